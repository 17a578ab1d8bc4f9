package readstore

import (
	"context"
	"fmt"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/repository/converter"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/pkg/pgconv"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"
)

type RoomReadQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.ConferenceRoom, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.ConferenceRoom, error)
}

type RoomReadStore struct {
	queries RoomReadQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomReadQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) RoomByID(ctx context.Context, id room.ID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, int64(id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(fmt.Sprintf("room %d not found", id), err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	snap := converter.RoomSnapshotFromRow(row)
	return &snap, nil
}

func (r *RoomReadStore) ListRooms(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}

	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RoomView{
			ID:          room.ID(row.ID),
			Name:        row.Name,
			Capacity:    int(row.Capacity),
			Description: pgconv.StringPtrFromPgtype(row.Description),
			Location:    pgconv.StringPtrFromPgtype(row.Location),
		}
	}
	return result, nil
}
