package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:                  "development",
		Port:                 5000,
		SessionRetentionMin:  5,
		PriceRetryAttempts:   3,
		PriceRetryBaseDelay:  time.Second,
		PriceRequestTimeout:  10 * time.Second,
		BinanceBaseURL:       "https://api.binance.com",
		OKXBaseURL:           "https://www.okx.com",
		BybitBaseURL:         "https://api.bybit.com",
		DeribitBaseURL:       "https://www.deribit.com",
		ShutdownGraceSeconds: 10,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.OKXBaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing OKX_BASE_URL")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestValidate_InvalidRetention(t *testing.T) {
	cfg := validConfig()
	cfg.SessionRetentionMin = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive retention")
	}
}

func TestValidate_InvalidRetryAttempts(t *testing.T) {
	cfg := validConfig()
	cfg.PriceRetryAttempts = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive retry attempts")
	}
}

func TestSessionRetention(t *testing.T) {
	cfg := validConfig()
	if got := cfg.SessionRetention(); got != 5*time.Minute {
		t.Fatalf("expected 5m retention, got %s", got)
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}
