package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env                  string
	Port                 int
	SessionRetentionMin  int
	PriceRetryAttempts   int
	PriceRetryBaseDelay  time.Duration
	PriceRequestTimeout  time.Duration
	BinanceBaseURL       string
	OKXBaseURL           string
	BybitBaseURL         string
	DeribitBaseURL       string
	ShutdownGraceSeconds int
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionRetentionMin <= 0 {
		return fmt.Errorf("SESSION_RETENTION_MIN must be positive, got %d", c.SessionRetentionMin)
	}
	if c.PriceRetryAttempts <= 0 {
		return fmt.Errorf("PRICE_RETRY_ATTEMPTS must be positive, got %d", c.PriceRetryAttempts)
	}
	if c.PriceRetryBaseDelay < 0 {
		return fmt.Errorf("PRICE_RETRY_BASE_DELAY_MS must not be negative, got %s", c.PriceRetryBaseDelay)
	}
	if c.PriceRequestTimeout <= 0 {
		return fmt.Errorf("PRICE_REQUEST_TIMEOUT_SEC must be positive, got %s", c.PriceRequestTimeout)
	}
	if c.ShutdownGraceSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_GRACE_SEC must be positive, got %d", c.ShutdownGraceSeconds)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "BINANCE_BASE_URL", value: c.BinanceBaseURL},
		{name: "OKX_BASE_URL", value: c.OKXBaseURL},
		{name: "BYBIT_BASE_URL", value: c.BybitBaseURL},
		{name: "DERIBIT_BASE_URL", value: c.DeribitBaseURL},
	}
}

func (c *Config) SessionRetention() time.Duration {
	return time.Duration(c.SessionRetentionMin) * time.Minute
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
