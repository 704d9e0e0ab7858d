package main

import (
	"context"
	"log/slog"
	"os"

	"herdwatch/config"
	"herdwatch/internal/delivery"
	"herdwatch/internal/delivery/http"
	"herdwatch/internal/delivery/http/middleware"
	"herdwatch/internal/delivery/http/router/handler"
	"herdwatch/internal/delivery/worker"
	"herdwatch/internal/infra/auth"
	"herdwatch/internal/infra/cache"
	logs "herdwatch/internal/infra/log"
	"herdwatch/internal/infra/mail"
	"herdwatch/internal/infra/persistence/postgres"
	"herdwatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFarmRepository,
			postgres.NewAnimalRepository,
			postgres.NewReturnRecordRepository,
			postgres.NewNotificationRepository,
			postgres.NewAlertScheduleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			cache.NewRedisStore,
			mail.NewSMTPMailer,
			mail.NewDispatcher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReturnStatusService,
			impl.NewAlertService,
			impl.NewCheckinService,
			impl.NewScheduleService,
			impl.NewNotificationService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAlertHandler,
			handler.NewCheckinHandler,
			handler.NewNotificationHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			worker.NewScheduler,
			worker.AsRescheduler,
			fx.Annotate(
				worker.AsDelivery,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
