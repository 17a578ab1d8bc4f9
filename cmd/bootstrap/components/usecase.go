package components

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/publisher"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/admission"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/notification"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseNotificationModule,
	usecaseAdmissionModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
)

var usecaseNotificationModule = fx.Module("usecase/notification",
	fx.Provide(
		NewPublisher,
		NewDispatcher,
	),
)

var usecaseAdmissionModule = fx.Module("usecase/admission",
	fx.Provide(
		fx.Annotate(
			validation.NewPipeline,
			fx.As(new(commands.Validator)),
		),
		fx.Annotate(
			NewAdmissionEngine,
			fx.As(new(commands.Admitter)),
		),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewRoomQueries,
	),
)

// NewClock reads wall time in the zone reservation dates are written in.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Admission.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}

type publisherParams struct {
	fx.In

	Config config.Config
	Logger *slog.Logger
	Jobs   publisher.JobWriter    `optional:"true"`
	Notify publisher.NotifyQueries `optional:"true"`
	DB     sqlc.DBTX               `optional:"true"`
}

// NewPublisher selects the outbound channel. The outbox and pgnotify channels need the Postgres store.
func NewPublisher(p publisherParams) (notification.Publisher, error) {
	switch p.Config.Notify.Driver {
	case config.NotifyDriverOutbox:
		if p.Jobs == nil {
			return nil, errs.Newf("NOTIFY_DRIVER=%s requires the postgres store", config.NotifyDriverOutbox)
		}
		return publisher.NewOutboxPublisher(p.Jobs, p.Config.Notify.Channel), nil
	case config.NotifyDriverPgNotify:
		if p.Notify == nil || p.DB == nil {
			return nil, errs.Newf("NOTIFY_DRIVER=%s requires the postgres store", config.NotifyDriverPgNotify)
		}
		return publisher.NewPgNotifyPublisher(p.Notify, p.DB, p.Config.Notify.Channel), nil
	default:
		return publisher.NewLogPublisher(p.Logger), nil
	}
}

func NewDispatcher(lc fx.Lifecycle, cfg config.Config, pub notification.Publisher, logger *slog.Logger) *notification.Dispatcher {
	d := notification.NewDispatcher(pub, notification.Config{
		Workers:        cfg.Notify.Workers,
		QueueSize:      cfg.Notify.QueueSize,
		PublishTimeout: cfg.Notify.PublishTimeout,
	}, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}

func NewAdmissionEngine(
	uow shared.UnitOfWork,
	clk clock.Clock,
	dispatcher *notification.Dispatcher,
	cfg config.Config,
	logger *slog.Logger,
	tp trace.TracerProvider,
) *admission.Engine {
	return admission.NewEngine(uow, clk, dispatcher, admission.Config{Timeout: cfg.Admission.Timeout}, logger, tp)
}
