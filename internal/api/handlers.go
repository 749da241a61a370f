package api

import (
	"net/http"
	"os"
	"regexp"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sunstate/server/config"
	"sunstate/server/internal/calculator"
	"sunstate/server/internal/i18n"
	"sunstate/server/internal/metrics"
	"sunstate/server/internal/models"
	"sunstate/server/internal/notify"
	"sunstate/server/internal/session"
	"sunstate/server/internal/wizard"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Handler struct {
	cfg        *config.Config
	store      session.Store
	submitter  wizard.Submitter
	notifier   *notify.Service
	translator *i18n.Translator
	logger     *logrus.Logger

	// sessions with a listing submission in flight on this instance
	inflight sync.Map
}

func NewHandler(cfg *config.Config, store session.Store, submitter wizard.Submitter, notifier *notify.Service, translator *i18n.Translator, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		cfg:        cfg,
		store:      store,
		submitter:  submitter,
		notifier:   notifier,
		translator: translator,
		logger:     logger,
	}
}

// locale resolves the request locale, falling back to the site default.
func (h *Handler) locale(c *gin.Context) string {
	if locale := c.Query("locale"); locale != "" {
		return locale
	}
	return h.cfg.Site.DefaultLocale
}

// SubmitContact validates a contact-form payload and dispatches the enquiry
// notification. The endpoint never persists the submission.
func (h *Handler) SubmitContact(c *gin.Context) {
	var sub models.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		h.logger.WithError(err).Error("Failed to parse contact submission")
		metrics.ContactSubmissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		metrics.ContactSubmissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required"})
		return
	}

	if !emailPattern.MatchString(sub.Email) {
		metrics.ContactSubmissions.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email address"})
		return
	}

	// Only report an IP the caller's proxy chain actually forwarded.
	clientIP := c.GetHeader("X-Forwarded-For")
	if clientIP == "" {
		clientIP = c.GetHeader("X-Real-IP")
	}

	if err := h.notifier.DispatchContact(c.Request.Context(), sub, clientIP); err != nil {
		h.logger.WithError(err).Error("Failed to dispatch contact notification")
		metrics.ContactSubmissions.WithLabelValues("failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
		return
	}

	metrics.ContactSubmissions.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.translator.T(h.locale(c), "contact.thank_you"),
	})
}

// GetSavings returns the comparative cost breakdown for a property price.
func (h *Handler) GetSavings(c *gin.Context) {
	price, err := strconv.Atoi(c.Query("price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a whole dollar amount"})
		return
	}

	if !calculator.InRange(price) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Price must be between 200,000 and 3,000,000",
		})
		return
	}

	c.JSON(http.StatusOK, calculator.Savings(price))
}

// GetAgents returns the agent roster plus the label for the explicit
// no-agent option.
func (h *Handler) GetAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"agents":          config.Agents,
		"no_agent_option": h.translator.T(h.locale(c), "review.no_agent"),
	})
}

// GetSiteConfig exposes the public frontend configuration. Every field has a
// safe default so missing environment variables never break the page.
func (h *Handler) GetSiteConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"domain":            h.cfg.Site.Domain,
		"default_locale":    h.cfg.Site.DefaultLocale,
		"locales":           h.translator.Locales(),
		"property_types":    models.PropertyTypes,
		"analytics_id":      h.cfg.Site.AnalyticsID,
		"analytics_enabled": h.cfg.Site.AnalyticsID != "",
	})
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
