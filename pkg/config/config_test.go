package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MAKE_WEBHOOK_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("WEBHOOK_TIMEOUT", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")

	cfg := LoadConfig()

	if cfg.HasWebhook() {
		t.Fatalf("\nwanted:\nno webhook\ngot:\n%q", cfg.WebhookURL)
	}
	if cfg.Port != "8080" {
		t.Fatalf("\nwanted:\n8080\ngot:\n%s", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("\nwanted:\nrelease\ngot:\n%s", cfg.GinMode)
	}
	if cfg.WebhookTimeout != 0 {
		t.Fatalf("\nwanted:\n0\ngot:\n%v", cfg.WebhookTimeout)
	}
	if cfg.AllowedOrigin != "*" {
		t.Fatalf("\nwanted:\n*\ngot:\n%s", cfg.AllowedOrigin)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("MAKE_WEBHOOK_URL", "https://hook.eu1.make.com/abc")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("WEBHOOK_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://aquaflow.example")

	cfg := LoadConfig()

	if !cfg.HasWebhook() || cfg.WebhookURL != "https://hook.eu1.make.com/abc" {
		t.Fatalf("\nwanted:\nhttps://hook.eu1.make.com/abc\ngot:\n%q", cfg.WebhookURL)
	}
	if cfg.Port != "9090" {
		t.Fatalf("\nwanted:\n9090\ngot:\n%s", cfg.Port)
	}
	if cfg.GinMode != "debug" {
		t.Fatalf("\nwanted:\ndebug\ngot:\n%s", cfg.GinMode)
	}
	if cfg.WebhookTimeout != 5*time.Second {
		t.Fatalf("\nwanted:\n5s\ngot:\n%v", cfg.WebhookTimeout)
	}
	if cfg.AllowedOrigin != "https://aquaflow.example" {
		t.Fatalf("\nwanted:\nhttps://aquaflow.example\ngot:\n%s", cfg.AllowedOrigin)
	}
}

func TestHasWebhookNilConfig(t *testing.T) {
	var cfg *Config
	if cfg.HasWebhook() {
		t.Fatalf("\nwanted:\nfalse\ngot:\ntrue")
	}
}
