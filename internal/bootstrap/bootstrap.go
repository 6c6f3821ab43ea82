package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/grantops/grantdesk/internal/adapters/notify"
	"github.com/grantops/grantdesk/internal/config"
	"github.com/grantops/grantdesk/internal/core/ports"
	"github.com/grantops/grantdesk/internal/core/usecase"
	"github.com/grantops/grantdesk/internal/infrastructure/export"
	"github.com/grantops/grantdesk/internal/infrastructure/fallback"
	"github.com/grantops/grantdesk/internal/infrastructure/gateway"
	"github.com/grantops/grantdesk/internal/infrastructure/resilience"
	"github.com/grantops/grantdesk/internal/observability/logging"
	"github.com/grantops/grantdesk/internal/observability/metrics"
	"github.com/grantops/grantdesk/internal/state"
)

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.ClientMetrics
	Store   *state.Store
	Gateway *gateway.Client

	DashboardUC   ports.DashboardService
	CrosswalkUC   ports.CrosswalkService
	BoilerplateUC ports.BoilerplateService
	PlanUC        ports.PlanService
	SessionUC     ports.SessionService
	ExportUC      ports.ExportService
}

func New(cfg config.Config) (*App, error) {
	logger := logging.NewJSONLogger("grantdesk", cfg.LogLevel)
	clientMetrics := metrics.NewClientMetrics("grantdesk")
	store := state.New()

	demo, err := fallback.Load()
	if err != nil {
		return nil, fmt.Errorf("load demo datasets: %w", err)
	}

	exec := resilience.NewExecutor(resilience.Config{
		BreakerEnabled:          cfg.BreakerEnabled,
		BreakerMinRequests:      uint32(cfg.BreakerMinRequests),
		BreakerFailureRatio:     cfg.BreakerFailureRatio,
		BreakerOpenTimeout:      time.Duration(cfg.BreakerOpenTimeoutSecs) * time.Second,
		BreakerHalfOpenMaxCalls: uint32(cfg.BreakerHalfOpenMaxCalls),
		RateLimitPerSecond:      cfg.RateLimitPerSecond,
		RateLimitBurst:          cfg.RateLimitBurst,
	})

	notifier := notify.NewCenter(store, logger, clientMetrics)
	client := gateway.New(
		cfg.APIBaseURL,
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second,
		exec,
		notifier,
		store,
		clientMetrics,
	)

	downloads, err := export.NewDownloads(cfg.ExportDir)
	if err != nil {
		return nil, fmt.Errorf("init export dir: %w", err)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: clientMetrics,
		Store:   store,
		Gateway: client,

		DashboardUC:   usecase.NewDashboard(client, client, client, client, store, demo, clientMetrics, logger),
		CrosswalkUC:   usecase.NewCrosswalks(client, store, demo, clientMetrics, logger),
		BoilerplateUC: usecase.NewBoilerplate(client, store, demo, clientMetrics, logger),
		PlanUC:        usecase.NewPlans(client, store, demo, clientMetrics, logger),
		SessionUC:     usecase.NewSessions(client, store, logger),
		ExportUC:      usecase.NewExports(client, downloads, export.Renderer{}, store, clientMetrics, logger),
	}, nil
}
