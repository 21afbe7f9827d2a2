package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the web app.
type Config struct {
	HTTPAddr    string
	DatabaseURL string
	SecretKey   string
	SessionTTL  time.Duration
	// TemplateDir can be overridden for non-standard layouts.
	TemplateDir string
}

// Load reads configuration from environment variables with sane defaults,
// loading a .env file first when one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:    strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SecretKey:   strings.TrimSpace(os.Getenv("SECRET_KEY")),
		SessionTTL:  parseTTL(strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS"))),
		TemplateDir: strings.TrimSpace(os.Getenv("TEMPLATE_DIR")),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskflow.db"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 30 * 24 * time.Hour
	}
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "web/templates"
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = uuid.NewString()
		log.Println("[warn] SECRET_KEY is not set, using a random value; sessions will not survive a restart")
	}

	return cfg
}

// SessionMaxAge returns the remember-me cookie lifetime in seconds.
func (c *Config) SessionMaxAge() int {
	return int(c.SessionTTL / time.Second)
}

func parseTTL(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
