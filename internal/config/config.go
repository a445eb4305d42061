package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL     string `envconfig:"DATABASE_URL" required:"true"`
	Port            string `envconfig:"PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`
	StripeCurrency  string `envconfig:"STRIPE_CURRENCY" default:"usd"`
	ResendAPIKey    string `envconfig:"RESEND_API_KEY"`
	MailFrom        string `envconfig:"MAIL_FROM" default:"ShopAPI <onboarding@resend.dev>"`
	ResetBaseURL    string `envconfig:"RESET_BASE_URL" default:"http://localhost:3000/password/reset"`
	UnsplashKey     string `envconfig:"UNSPLASH_ACCESS_KEY"`
}

// Load reads .env when present, then the environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warnf("error loading .env file (continuing): %v", err)
		}
	} else {
		logger.Info("loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
