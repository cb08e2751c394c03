package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/blogem/asset-tracker/authenticator"
	"github.com/blogem/asset-tracker/models"
)

// Config holds every setting the server reads from the environment
type Config struct {
	Port               string
	DatabasePath       string
	OIDC               authenticator.OpenIDConfig
	UseHTTPS           bool
	SessionLifetime    time.Duration
	AdminEmails        []string
	AuditRetentionDays int
	LogLevel           string
	LogFormat          string
}

var defaults = map[string]any{
	"PORT":                 "8080",
	"DATABASE_PATH":        "asset_tracker.db",
	"USE_HTTPS":            false,
	"SESSION_LIFETIME":     time.Hour,
	"AUDIT_RETENTION_DAYS": 365,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "text",
}

var keys = []string{
	"PORT",
	"DATABASE_PATH",
	"OIDC_DOMAIN",
	"OIDC_CLIENT_ID",
	"OIDC_CLIENT_SECRET",
	"OIDC_CALLBACK_URL",
	"USE_HTTPS",
	"SESSION_LIFETIME",
	"ADMIN_EMAILS",
	"AUDIT_RETENTION_DAYS",
	"LOG_LEVEL",
	"LOG_FORMAT",
}

// Load reads .env files when present, then the process environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, errors.Wrap(err, "failed to load env file")
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind %s", key)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:         v.GetString("PORT"),
		DatabasePath: v.GetString("DATABASE_PATH"),
		OIDC: authenticator.OpenIDConfig{
			Domain:       v.GetString("OIDC_DOMAIN"),
			ClientID:     v.GetString("OIDC_CLIENT_ID"),
			ClientSecret: v.GetString("OIDC_CLIENT_SECRET"),
			CallbackURL:  v.GetString("OIDC_CALLBACK_URL"),
		},
		UseHTTPS:           v.GetBool("USE_HTTPS"),
		SessionLifetime:    v.GetDuration("SESSION_LIFETIME"),
		AdminEmails:        splitList(v.GetString("ADMIN_EMAILS")),
		AuditRetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
	}
}

// Validate reports every invalid or missing setting at once
func (c *Config) Validate() error {
	var errs models.ValidationErrors

	required := []struct {
		key   string
		value string
	}{
		{"OIDC_DOMAIN", c.OIDC.Domain},
		{"OIDC_CLIENT_ID", c.OIDC.ClientID},
		{"OIDC_CLIENT_SECRET", c.OIDC.ClientSecret},
		{"OIDC_CALLBACK_URL", c.OIDC.CallbackURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, models.ValidationError{Field: r.key, Message: r.key + " is required"})
		}
	}

	if c.Port == "" {
		errs = append(errs, models.ValidationError{Field: "PORT", Message: "PORT is required"})
	}
	if c.DatabasePath == "" {
		errs = append(errs, models.ValidationError{Field: "DATABASE_PATH", Message: "DATABASE_PATH is required"})
	}
	if c.SessionLifetime < time.Minute {
		errs = append(errs, models.ValidationError{Field: "SESSION_LIFETIME", Message: "SESSION_LIFETIME must be at least one minute"})
	}
	if c.AuditRetentionDays < 1 {
		errs = append(errs, models.ValidationError{Field: "AUDIT_RETENTION_DAYS", Message: "AUDIT_RETENTION_DAYS must be at least 1"})
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, models.ValidationError{Field: "LOG_FORMAT", Message: "LOG_FORMAT must be text or json"})
	}

	return errs.Err()
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
