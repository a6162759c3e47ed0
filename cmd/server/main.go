package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/NewsContentAPI/cmd/server/factory"
	"github.com/NewsContentAPI/internal/app"
	"github.com/NewsContentAPI/internal/infra/tracing"
	transport "github.com/NewsContentAPI/internal/transport/http"
	"github.com/NewsContentAPI/pkg/config"
	"github.com/NewsContentAPI/pkg/logging"
	"go.uber.org/fx"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			// Config
			config.Load,

			// Content
			factory.NewCatalog,
			factory.NewCatalogReader,
			factory.NewAssetStore,

			// Services
			factory.NewContentService,
			factory.NewReadinessChecker,

			// HTTP Server
			factory.NewRouter,
			transport.NewHTTPServer,
		),
		fx.Invoke(
			ConfigureLogging,
			SetupTracer,
			ReportReadiness,
			StartServer,
		),
	)
}

// --- Invokers ---

func ConfigureLogging(cfg *config.Config) {
	slog.SetDefault(logging.New(cfg.LogLevel))
}

func SetupTracer(lc fx.Lifecycle, cfg *config.Config) error {
	ctx := context.Background()
	shutdown, err := tracing.InitTracer(ctx, cfg.ServiceName, cfg.OTLPEndpoint, cfg.TracingEnabled)
	if err != nil {
		slog.Error("Failed to initialize tracer", "error", err)
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Info("Shutting down tracer provider")
			return shutdown(ctx)
		},
	})
	return nil
}

// ReportReadiness logs whether static assets and poll references are in order once the app starts.
func ReportReadiness(lc fx.Lifecycle, checker *app.ReadinessChecker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			checker.Report(ctx)
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, server *http.Server, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				slog.Info("Starting content API server", "address", server.Addr, "static_dir", cfg.StaticDir)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					slog.Error("HTTP server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(ctx)
		},
	})
}
