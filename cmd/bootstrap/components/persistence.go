package components

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/room"
	"room-booking/internal/handler/api"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/infra/publisher"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/infra/repository"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/infra/uow"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	repositoryModule,
	fx.Invoke(seedPostgresRooms),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		fx.Annotate(
			memstore.New,
			fx.As(new(shared.UnitOfWork)),
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(queries.RoomListStore)),
			fx.As(new(validation.RoomLookup)),
			fx.As(new(api.RoomDeleter)),
			fx.As(new(roomPutter)),
		),
	),
	fx.Invoke(seedMemoryRooms),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(queries.RoomListStore)),
			fx.As(new(validation.RoomLookup)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.RoomWriteQueries)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(api.RoomDeleter)),
			fx.As(new(roomEnsurer)),
		),
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(publisher.JobWriter)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(publisher.NotifyQueries)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

type roomEnsurer interface {
	Ensure(ctx context.Context, r *room.Room) (room.ID, error)
}

type roomPutter interface {
	PutRoom(name string, capacity int, description, location *string) (room.ID, error)
}

func seedPostgresRooms(cfg config.Config, rooms roomEnsurer, logger *slog.Logger) error {
	seeds, err := cfg.Store.ParseSeedRooms()
	if err != nil {
		return err
	}
	ctx := context.Background()
	for _, s := range seeds {
		r, err := room.NewRoom(0, s.Name, s.Capacity, nil, s.Location)
		if err != nil {
			return err
		}
		id, err := rooms.Ensure(ctx, r)
		if err != nil {
			return err
		}
		logger.Info("room seeded", "room_id", id, "name", s.Name)
	}
	return nil
}

func seedMemoryRooms(cfg config.Config, rooms roomPutter, logger *slog.Logger) error {
	seeds, err := cfg.Store.ParseSeedRooms()
	if err != nil {
		return err
	}
	for _, s := range seeds {
		id, err := rooms.PutRoom(s.Name, s.Capacity, nil, s.Location)
		if err != nil {
			return err
		}
		logger.Info("room seeded", "room_id", id, "name", s.Name)
	}
	return nil
}
