package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sunstate/server/config"
	"sunstate/server/internal/export"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	srcDir := flag.String("src", "out", "directory containing the exported site tree")
	destDir := flag.String("dest", ".", "deployment directory to copy the tree into")
	domain := flag.String("domain", cfg.Site.Domain, "custom domain written to the CNAME file")
	locale := flag.String("locale", cfg.Site.DefaultLocale, "default locale the root redirect targets")
	flag.Parse()

	opts := export.Options{
		SrcDir:        *srcDir,
		DestDir:       *destDir,
		Domain:        *domain,
		DefaultLocale: *locale,
	}

	if err := export.Run(opts, logger); err != nil {
		logger.WithError(err).Fatal("Export failed")
	}

	logger.Info("Deployment export complete")
}
