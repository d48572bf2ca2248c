package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/efreitasn/auctionhouse/internal/bank"
	"github.com/efreitasn/auctionhouse/internal/config"
	"github.com/efreitasn/auctionhouse/internal/engine"
	"github.com/efreitasn/auctionhouse/internal/handler"
	"github.com/efreitasn/auctionhouse/internal/notify"
	"github.com/efreitasn/auctionhouse/internal/service"
	"github.com/efreitasn/auctionhouse/internal/store"
	"github.com/efreitasn/auctionhouse/internal/telemetry"
)

const serviceName = "auctionhouse"

func main() {
	healthcheck := flag.Bool("healthcheck", false, "Run health check against running server")
	flag.Parse()

	// Handle -healthcheck flag: HTTP GET to localhost:PORT/healthz, exit 0/1.
	if *healthcheck {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		resp, err := http.Get(fmt.Sprintf("http://localhost:%s/healthz", port))
		if err != nil {
			os.Exit(1)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		logger.Error("failed to set up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Stores.
	buyers := store.NewBuyerStore()
	sellers := store.NewSellerStore()
	catalogue := store.NewCatalogueStore()
	auctions := store.NewAuctionRegistry()

	// Collaborators.
	hub := notify.NewHub()
	notifier := notify.Fanout{
		notify.NewWebhookNotifier(cfg.NotifyTimeout, logger),
		hub,
	}

	var ledger engine.Ledger
	if cfg.BankURL != "" {
		ledger = bank.NewHTTPLedger(cfg.BankURL, cfg.BankTimeout, logger)
		logger.Info("using bank API", slog.String("url", cfg.BankURL))
	} else {
		ledger = bank.NewMemoryLedger()
		logger.Warn("BANK_URL not set, transfers are recorded in memory only")
	}

	eng := engine.New(engine.Params{
		BuyerPremium:  cfg.BuyerPremiumPercent,
		Commission:    cfg.CommissionPercent,
		Increment:     cfg.BidIncrement,
		HouseAccount:  cfg.HouseBankAccount,
		HouseAuthCode: cfg.HouseBankAuthCode,
	}, buyers, sellers, catalogue, auctions, notifier, ledger, logger)

	// Services.
	directorySvc := service.NewDirectoryService(buyers, sellers, logger)
	catalogueSvc := service.NewCatalogueService(sellers, catalogue, eng, logger)
	auctionSvc := service.NewAuctionService(eng)

	router := handler.NewRouter(directorySvc, catalogueSvc, auctionSvc, hub, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutdown signal received", slog.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}
	cancel()

	logger.Info("server stopped")
}
