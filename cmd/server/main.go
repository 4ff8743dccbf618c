package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pocketledger/internal/config"
	"pocketledger/internal/handlers"
	"pocketledger/internal/ledger"
	"pocketledger/internal/middleware"
	"pocketledger/internal/notify"
	"pocketledger/internal/prefs"
	"pocketledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	store, err := ledger.Open(cfg.LedgerPath())
	if err != nil {
		slog.Error("Failed to open ledger", "path", cfg.LedgerPath(), "error", err)
		os.Exit(1)
	}

	prefsStore, err := prefs.Open(cfg.PrefsPath())
	if err != nil {
		slog.Error("Failed to open budget preferences", "path", cfg.PrefsPath(), "error", err)
		os.Exit(1)
	}

	metrics := services.NewPrometheusMetrics()
	analytics := services.NewAnalyticsService(store, cfg.Ledger.WeekStart)
	budget := services.NewBudgetService(analytics, prefsStore, notify.NewLogNotifier(), metrics)
	exporter := services.NewExportService()

	transactionHandler := handlers.NewTransactionHandler(store, metrics)
	summaryHandler := handlers.NewSummaryHandler(analytics)
	budgetHandler := handlers.NewBudgetHandler(prefsStore, budget)
	exportHandler := handlers.NewExportHandler(store, exporter, metrics, cfg.Storage.ExportDir)
	healthHandler := handlers.NewHealthCheckHandler(store)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.RateLimiterWithConfig(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.POST("/transactions", transactionHandler.Create)
	v1.GET("/transactions", transactionHandler.List)
	v1.GET("/transactions/:id", transactionHandler.Get)
	v1.PUT("/transactions/:id", transactionHandler.Update)
	v1.DELETE("/transactions/:id", transactionHandler.Delete)

	v1.GET("/summary/month", summaryHandler.Month)
	v1.GET("/summary/weekly", summaryHandler.Weekly)
	v1.GET("/summary/monthly", summaryHandler.Monthly)

	v1.GET("/budget", budgetHandler.GetConfig)
	v1.PUT("/budget", budgetHandler.SetMonthly)
	v1.PUT("/budget/categories/:category", budgetHandler.SetCategory)
	v1.PUT("/budget/threshold", budgetHandler.SetThreshold)
	v1.GET("/budget/status", budgetHandler.Status)

	v1.GET("/export/csv", exportHandler.CSV)
	v1.POST("/export/file", exportHandler.File)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
