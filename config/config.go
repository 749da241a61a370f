package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP API listens on
		Port string `env:"PORT" envDefault:"5280"`

		// Execution mode: development logs notifications instead of sending them
		Environment string `env:"APP_ENV" envDefault:"development"`

		// Origins allowed by the CORS middleware
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	}

	// Site configuration exposed to the frontend
	Site struct {
		// Custom domain written to the CNAME file by the export tool
		Domain string `env:"SITE_DOMAIN" envDefault:"sunstaterealty.com.au"`

		// Default locale; the root redirect targets /<locale>/
		DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`

		// Optional analytics measurement id; empty disables analytics
		AnalyticsID string `env:"GA_MEASUREMENT_ID"`

		// Optional listing-portal API key; empty disables the integration
		PortalAPIKey string `env:"PORTAL_API_KEY"`
	}

	// Contact notification configuration; all optional, absence means the
	// notification is composed but not delivered
	Contact struct {
		Recipient string `env:"CONTACT_RECIPIENT"`
		Sender    string `env:"CONTACT_SENDER"`
		AWSRegion string `env:"AWS_REGION"`
	}

	// Wizard session store configuration
	Sessions struct {
		// Redis address; empty selects the in-memory store
		RedisAddr     string `env:"REDIS_ADDR"`
		RedisPassword string `env:"REDIS_PASSWORD"`
		RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

		// Idle lifetime of a wizard session in minutes
		TTLMinutes int `env:"SESSION_TTL_MINUTES" envDefault:"60"`
	}

	// Listing submission configuration
	Listings struct {
		// Simulated round-trip delay of the submission backend in milliseconds
		SubmitDelayMS int `env:"SUBMIT_DELAY_MS" envDefault:"1500"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}
