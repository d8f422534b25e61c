package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"textura/config"
	"textura/internal/delivery"
	"textura/internal/delivery/http"
	"textura/internal/delivery/http/router/handler"
	"textura/internal/delivery/navigation"
	"textura/internal/infra/auth"
	"textura/internal/infra/auth/local"
	"textura/internal/infra/keychain"
	logs "textura/internal/infra/log"
	"textura/internal/infra/metrics"
	"textura/internal/infra/validation"
	"textura/internal/usecase"
	"textura/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startEngine,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		keychain.Module,
		metrics.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			validation.NewFormValidator,
		),
		local.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordResetService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFormHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				navigation.NewDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startEngine runs the startup sync with the application and closes the engine on shutdown.
func startEngine(lc fx.Lifecycle, engine usecase.AuthUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting auth engine", slog.Bool("authenticated", engine.IsAuthenticated()))

			return engine.Start(ctx)
		},
		OnStop: func(context.Context) error {
			engine.Close()
			logger.Info("Auth engine closed")

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
