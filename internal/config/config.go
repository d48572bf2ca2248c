package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

// Config holds all runtime configuration for the auction house.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	BuyerPremiumPercent float64      `env:"BUYER_PREMIUM_PERCENT" envDefault:"10"`
	CommissionPercent   float64      `env:"COMMISSION_PERCENT" envDefault:"15"`
	BidIncrement        domain.Money `env:"BID_INCREMENT" envDefault:"10.00"`
	HouseBankAccount    string       `env:"HOUSE_BANK_ACCOUNT" envDefault:"AH A/C"`
	HouseBankAuthCode   string       `env:"HOUSE_BANK_AUTH_CODE" envDefault:"AH-auth"`

	// BankURL is the base URL of the banking API. Empty selects the
	// in-memory ledger.
	BankURL       string        `env:"BANK_URL"`
	BankTimeout   time.Duration `env:"BANK_TIMEOUT" envDefault:"0s"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"5s"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// OTelEndpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. It returns an error for any invalid value.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d, must be between 1 and 65535", c.Port)
	}
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	if c.BuyerPremiumPercent < 0 {
		return fmt.Errorf("invalid BUYER_PREMIUM_PERCENT: %v, must be >= 0", c.BuyerPremiumPercent)
	}
	if c.CommissionPercent < 0 {
		return fmt.Errorf("invalid COMMISSION_PERCENT: %v, must be >= 0", c.CommissionPercent)
	}
	if c.BidIncrement < 0 {
		return fmt.Errorf("invalid BID_INCREMENT: %s, must be >= 0", c.BidIncrement)
	}
	if c.HouseBankAccount == "" {
		return fmt.Errorf("invalid HOUSE_BANK_ACCOUNT: must not be empty")
	}
	if c.BankURL != "" {
		u, err := url.ParseRequestURI(c.BankURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("invalid BANK_URL: %q, must be an absolute http(s) URL", c.BankURL)
		}
	}

	durations := []struct {
		key string
		val time.Duration
	}{
		{"BANK_TIMEOUT", c.BankTimeout},
		{"NOTIFY_TIMEOUT", c.NotifyTimeout},
		{"READ_TIMEOUT", c.ReadTimeout},
		{"WRITE_TIMEOUT", c.WriteTimeout},
		{"IDLE_TIMEOUT", c.IdleTimeout},
		{"SHUTDOWN_TIMEOUT", c.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.val < 0 {
			return fmt.Errorf("invalid %s: %v, must be >= 0", d.key, d.val)
		}
	}
	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
