package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/richxcame/route-reviews/internal/reviews"
	"github.com/richxcame/route-reviews/internal/theme"
	"github.com/richxcame/route-reviews/internal/tui"
	"github.com/richxcame/route-reviews/pkg/config"
	apperrors "github.com/richxcame/route-reviews/pkg/errors"
	"github.com/richxcame/route-reviews/pkg/httpclient"
	"github.com/richxcame/route-reviews/pkg/logger"
	"github.com/richxcame/route-reviews/pkg/tracing"
)

const (
	serviceName = "route-reviews"
	version     = "1.0.0"
)

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.App.Environment, cfg.App.LogFile); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting route reviews client",
		zap.String("service", serviceName),
		zap.String("version", version),
		zap.String("environment", cfg.App.Environment),
		zap.String("api_base_url", cfg.API.BaseURL),
	)

	// Initialize Sentry for error tracking
	sentryConfig := apperrors.DefaultSentryConfig()
	sentryConfig.DSN = cfg.Telemetry.SentryDSN
	sentryConfig.ServerName = serviceName
	sentryConfig.Release = version
	if err := apperrors.InitSentry(sentryConfig); err != nil {
		logger.Warn("Failed to initialize Sentry, continuing without error tracking", zap.Error(err))
	} else {
		defer apperrors.Flush(2 * time.Second)
		logger.Info("Sentry error tracking initialized successfully")
	}

	// Initialize OpenTelemetry tracer
	if cfg.Telemetry.OTELEnabled {
		tracerCfg := tracing.Config{
			ServiceName:    serviceName,
			ServiceVersion: version,
			Environment:    cfg.App.Environment,
			OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
			Enabled:        true,
		}

		tp, err := tracing.InitTracer(tracerCfg, logger.Get())
		if err != nil {
			logger.Warn("Failed to initialize tracer, continuing without tracing", zap.Error(err))
		} else if tp != nil {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					logger.Warn("Failed to shutdown tracer", zap.Error(err))
				}
			}()
			logger.Info("OpenTelemetry tracing initialized successfully")
		}
	}

	client := reviews.NewClient(httpclient.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
	))

	model := tui.New(tui.Options{
		Client:          client,
		ThemeStore:      theme.NewStore(cfg.UI.ThemeFile),
		DefaultRouteID:  cfg.UI.DefaultRouteID,
		DefaultPageSize: cfg.UI.DefaultPageSize,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("terminal UI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
