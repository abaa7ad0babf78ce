package config

import (
	"fmt"
	"time"

	internalconfig "github.com/Aman24100/Voice-Operated-OTC-Trading-Bot/internal/config"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type envConfig struct {
	Env                    string `env:"ENV" envDefault:"production"`
	Port                   int    `env:"PORT" envDefault:"5000"`
	SessionRetentionMin    int    `env:"SESSION_RETENTION_MIN" envDefault:"5"`
	PriceRetryAttempts     int    `env:"PRICE_RETRY_ATTEMPTS" envDefault:"3"`
	PriceRetryBaseDelayMS  int    `env:"PRICE_RETRY_BASE_DELAY_MS" envDefault:"1000"`
	PriceRequestTimeoutSec int    `env:"PRICE_REQUEST_TIMEOUT_SEC" envDefault:"10"`
	BinanceBaseURL         string `env:"BINANCE_BASE_URL" envDefault:"https://api.binance.com"`
	OKXBaseURL             string `env:"OKX_BASE_URL" envDefault:"https://www.okx.com"`
	BybitBaseURL           string `env:"BYBIT_BASE_URL" envDefault:"https://api.bybit.com"`
	DeribitBaseURL         string `env:"DERIBIT_BASE_URL" envDefault:"https://www.deribit.com"`
	ShutdownGraceSeconds   int    `env:"SHUTDOWN_GRACE_SEC" envDefault:"10"`
}

func Load() (*internalconfig.Config, error) {
	// A local .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                  raw.Env,
		Port:                 raw.Port,
		SessionRetentionMin:  raw.SessionRetentionMin,
		PriceRetryAttempts:   raw.PriceRetryAttempts,
		PriceRetryBaseDelay:  time.Duration(raw.PriceRetryBaseDelayMS) * time.Millisecond,
		PriceRequestTimeout:  time.Duration(raw.PriceRequestTimeoutSec) * time.Second,
		BinanceBaseURL:       raw.BinanceBaseURL,
		OKXBaseURL:           raw.OKXBaseURL,
		BybitBaseURL:         raw.BybitBaseURL,
		DeribitBaseURL:       raw.DeribitBaseURL,
		ShutdownGraceSeconds: raw.ShutdownGraceSeconds,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
