// Package config collects the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	TransportResend = "resend"
	TransportSMTP   = "smtp"
)

// Config is the fully resolved server configuration.
type Config struct {
	Addr        string
	Env         string
	ContentDir  string
	FrontendURL string

	LogLevel  string
	LogFormat string

	Mail Mail
}

// Mail holds outbound mail settings. An empty credential for the selected
// transport leaves the sender unconfigured; see Development.
type Mail struct {
	Transport string
	From      string
	Recipient string

	ResendAPIKey  string
	ResendBaseURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// Development reports whether APP_ENV selects development mode. Any other
// value, including empty, is production.
func (c Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}

// Load reads the configuration from environment variables, applying
// defaults. Call godotenv.Load first to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		Env:         getenv("APP_ENV", "production"),
		ContentDir:  getenv("CONTENT_DIR", "./content"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
		Mail: Mail{
			Transport:     strings.ToLower(getenv("MAIL_TRANSPORT", TransportResend)),
			From:          getenv("MAIL_FROM", "Mavi Sigorta <onboarding@resend.dev>"),
			Recipient:     getenv("CONTACT_EMAIL", "info@mavisigorta.net"),
			ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
			ResendBaseURL: os.Getenv("RESEND_BASE_URL"),
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPUser:      os.Getenv("SMTP_USER"),
			SMTPPass:      os.Getenv("SMTP_PASS"),
		},
	}

	switch cfg.Mail.Transport {
	case TransportResend, TransportSMTP:
	default:
		return Config{}, fmt.Errorf("config: MAIL_TRANSPORT must be %q or %q, got %q",
			TransportResend, TransportSMTP, cfg.Mail.Transport)
	}

	if p := os.Getenv("SMTP_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("config: invalid SMTP_PORT %q", p)
		}
		cfg.Mail.SMTPPort = port
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
