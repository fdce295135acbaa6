package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration values
type Config struct {
	WebhookURL     string
	Port           string
	GinMode        string
	WebhookTimeout time.Duration
	AllowedOrigin  string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) *Config {
	v.SetDefault("make_webhook_url", "")
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("webhook_timeout", time.Duration(0))
	v.SetDefault("cors_allowed_origin", "*")
	v.AutomaticEnv()

	return &Config{
		WebhookURL:     v.GetString("make_webhook_url"),
		Port:           v.GetString("port"),
		GinMode:        v.GetString("gin_mode"),
		WebhookTimeout: v.GetDuration("webhook_timeout"),
		AllowedOrigin:  v.GetString("cors_allowed_origin"),
	}
}

// HasWebhook reports whether a relay destination is configured
func (c *Config) HasWebhook() bool {
	return c != nil && c.WebhookURL != ""
}
