package config

import (
	"os"
	"testing"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
)

var allEnvKeys = []string{
	"PORT", "LOG_LEVEL", "BUYER_PREMIUM_PERCENT", "COMMISSION_PERCENT",
	"BID_INCREMENT", "HOUSE_BANK_ACCOUNT", "HOUSE_BANK_AUTH_CODE",
	"BANK_URL", "BANK_TIMEOUT", "NOTIFY_TIMEOUT", "READ_TIMEOUT",
	"WRITE_TIMEOUT", "IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT", "OTEL_ENDPOINT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.BuyerPremiumPercent != 10 {
		t.Errorf("BuyerPremiumPercent = %v, want 10", cfg.BuyerPremiumPercent)
	}
	if cfg.CommissionPercent != 15 {
		t.Errorf("CommissionPercent = %v, want 15", cfg.CommissionPercent)
	}
	if cfg.BidIncrement != domain.MustParseMoney("10.00") {
		t.Errorf("BidIncrement = %s, want 10.00", cfg.BidIncrement)
	}
	if cfg.HouseBankAccount != "AH A/C" {
		t.Errorf("HouseBankAccount = %q, want %q", cfg.HouseBankAccount, "AH A/C")
	}
	if cfg.HouseBankAuthCode != "AH-auth" {
		t.Errorf("HouseBankAuthCode = %q, want %q", cfg.HouseBankAuthCode, "AH-auth")
	}
	if cfg.BankURL != "" {
		t.Errorf("BankURL = %q, want empty", cfg.BankURL)
	}
	if cfg.BankTimeout != 0 {
		t.Errorf("BankTimeout = %v, want 0", cfg.BankTimeout)
	}
	if cfg.NotifyTimeout != 5*time.Second {
		t.Errorf("NotifyTimeout = %v, want 5s", cfg.NotifyTimeout)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %v, want 10s", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout != 60*time.Second {
		t.Errorf("IdleTimeout = %v, want 60s", cfg.IdleTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.OTelEndpoint != "" {
		t.Errorf("OTelEndpoint = %q, want empty", cfg.OTelEndpoint)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BUYER_PREMIUM_PERCENT", "12.5")
	t.Setenv("COMMISSION_PERCENT", "0")
	t.Setenv("BID_INCREMENT", "2.50")
	t.Setenv("HOUSE_BANK_ACCOUNT", "House")
	t.Setenv("BANK_URL", "https://bank.example.com/api")
	t.Setenv("BANK_TIMEOUT", "3s")
	t.Setenv("NOTIFY_TIMEOUT", "1s")
	t.Setenv("SHUTDOWN_TIMEOUT", "15s")
	t.Setenv("OTEL_ENDPOINT", "http://collector:4318")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.BuyerPremiumPercent != 12.5 {
		t.Errorf("BuyerPremiumPercent = %v, want 12.5", cfg.BuyerPremiumPercent)
	}
	if cfg.CommissionPercent != 0 {
		t.Errorf("CommissionPercent = %v, want 0", cfg.CommissionPercent)
	}
	if cfg.BidIncrement != domain.MustParseMoney("2.50") {
		t.Errorf("BidIncrement = %s, want 2.50", cfg.BidIncrement)
	}
	if cfg.HouseBankAccount != "House" {
		t.Errorf("HouseBankAccount = %q, want %q", cfg.HouseBankAccount, "House")
	}
	if cfg.BankURL != "https://bank.example.com/api" {
		t.Errorf("BankURL = %q", cfg.BankURL)
	}
	if cfg.BankTimeout != 3*time.Second {
		t.Errorf("BankTimeout = %v, want 3s", cfg.BankTimeout)
	}
	if cfg.NotifyTimeout != time.Second {
		t.Errorf("NotifyTimeout = %v, want 1s", cfg.NotifyTimeout)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 15s", cfg.ShutdownTimeout)
	}
	if cfg.OTelEndpoint != "http://collector:4318" {
		t.Errorf("OTelEndpoint = %q", cfg.OTelEndpoint)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"negative premium", "BUYER_PREMIUM_PERCENT", "-1"},
		{"non-numeric commission", "COMMISSION_PERCENT", "ten"},
		{"negative commission", "COMMISSION_PERCENT", "-0.5"},
		{"bad increment", "BID_INCREMENT", "ten pounds"},
		{"negative increment", "BID_INCREMENT", "-1.00"},
		{"increment out of range", "BID_INCREMENT", "1e30"},
		{"relative bank url", "BANK_URL", "bank/api"},
		{"ftp bank url", "BANK_URL", "ftp://bank.example.com"},
		{"bad bank timeout", "BANK_TIMEOUT", "soon"},
		{"negative notify timeout", "NOTIFY_TIMEOUT", "-1s"},
		{"bad read timeout", "READ_TIMEOUT", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
