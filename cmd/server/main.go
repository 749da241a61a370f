package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sunstate/server/config"
	"sunstate/server/internal/api"
	"sunstate/server/internal/i18n"
	"sunstate/server/internal/notify"
	"sunstate/server/internal/session"
	"sunstate/server/internal/wizard"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	translator, err := i18n.New(cfg.Site.DefaultLocale)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load translations")
	}

	store := newSessionStore(cfg, logger)
	defer store.Close()

	notifier := notify.NewService(newMailer(cfg, logger), cfg.Contact.Recipient, cfg.Contact.Sender, logger)
	submitter := wizard.NewSimulatedSubmitter(time.Duration(cfg.Listings.SubmitDelayMS)*time.Millisecond, logger)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(api.RecoveryMiddleware(logger))
	router.Use(api.CORSMiddleware(cfg.Server.AllowedOrigins))

	handler := api.NewHandler(cfg, store, submitter, notifier, translator, logger)
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

// newSessionStore selects Redis when configured, otherwise the in-memory
// store.
func newSessionStore(cfg *config.Config, logger *logrus.Logger) session.Store {
	ttl := time.Duration(cfg.Sessions.TTLMinutes) * time.Minute

	if cfg.Sessions.RedisAddr == "" {
		logger.Info("Using in-memory wizard session store")
		return session.NewMemoryStore(ttl, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := session.NewRedisStore(ctx, cfg.Sessions.RedisAddr, cfg.Sessions.RedisPassword, cfg.Sessions.RedisDB, ttl)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}

	logger.WithField("addr", cfg.Sessions.RedisAddr).Info("Using Redis wizard session store")
	return store
}

// newMailer picks the contact-notification delivery path: development logs
// the composed body, production sends via SES when fully configured and
// otherwise accepts submissions without delivering anything.
func newMailer(cfg *config.Config, logger *logrus.Logger) notify.Mailer {
	if cfg.IsDevelopment() {
		return notify.NewLogMailer(logger)
	}

	if cfg.Contact.AWSRegion != "" && cfg.Contact.Recipient != "" && cfg.Contact.Sender != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		mailer, err := notify.NewSESMailer(ctx, cfg.Contact.AWSRegion)
		if err != nil {
			logger.WithError(err).Error("Failed to initialize SES mailer, notifications disabled")
			return notify.NoopMailer{}
		}
		return mailer
	}

	logger.Warn("No contact delivery configured, notifications will be accepted but not sent")
	return notify.NoopMailer{}
}
