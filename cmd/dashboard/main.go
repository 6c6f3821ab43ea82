package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grantops/grantdesk/internal/bootstrap"
	"github.com/grantops/grantdesk/internal/config"
)

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	metricsServer := &http.Server{
		Addr:        ":" + cfg.MetricsPort,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("metrics listening on :%s", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("metrics server error: %v", err)
		}
	}()

	switch {
	case os.Getenv("GRANTDESK_TOKEN") != "":
		app.Gateway.SetToken(os.Getenv("GRANTDESK_TOKEN"))
		if err := app.SessionUC.Restore(ctx); err != nil {
			app.Logger.Warn("token_restore_failed", "error", err)
		}
	case os.Getenv("GRANTDESK_EMAIL") != "":
		if err := app.SessionUC.Login(ctx, os.Getenv("GRANTDESK_EMAIL"), os.Getenv("GRANTDESK_PASSWORD")); err != nil {
			app.Logger.Warn("startup_login_failed", "error", err)
		}
	}

	interval := time.Duration(cfg.RefreshIntervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.DashboardUC.Refresh(ctx)
	app.Metrics.RecordRefreshCycle()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("metrics shutdown error: %v", err)
			}
			return
		case <-ticker.C:
			app.DashboardUC.Refresh(ctx)
			app.Metrics.RecordRefreshCycle()
		}
	}
}
