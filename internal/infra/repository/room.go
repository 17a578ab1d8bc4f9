package repository

import (
	"context"
	"fmt"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/pgconv"
)

type RoomWriteQueries interface {
	GetRoomByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.ConferenceRoom, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

// Ensure returns the id of the room with r's name, creating it first if needed.
func (rr *RoomRepository) Ensure(ctx context.Context, r *room.Room) (room.ID, error) {
	existing, err := rr.queries.GetRoomByName(ctx, rr.db, r.Name())
	if err == nil {
		return room.ID(existing.ID), nil
	}
	if !pgconv.IsNoRows(err) {
		return 0, infra.WrapRepoErr("failed to look up room by name", err)
	}

	id, err := rr.queries.CreateRoom(ctx, rr.db, sqlc.CreateRoomParams{
		Name:        r.Name(),
		Description: pgconv.StringPtrToPgtype(r.Description()),
		Capacity:    int32(r.Capacity()), // #nosec G115 -- capacity is validated and bounded by the column type
		Location:    pgconv.StringPtrToPgtype(r.Location()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	return room.ID(id), nil
}

// DeleteRoom refuses while any reservation references the room.
func (rr *RoomRepository) DeleteRoom(ctx context.Context, id room.ID) error {
	affected, err := rr.queries.DeleteRoom(ctx, rr.db, int64(id))
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to delete room", err)
		if infra.IsKind(wrapped, infra.KindForeignKeyViolated) {
			return errs.Mark(wrapped, errs.ErrRoomInUse)
		}
		return wrapped
	}
	if affected == 0 {
		return errs.Mark(infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("room %d not found", id)), errs.ErrRoomNotFound)
	}
	return nil
}
