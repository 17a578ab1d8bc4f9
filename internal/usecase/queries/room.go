package queries

import (
	"context"

	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/errs"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id room.ID) (*RoomView, error)
	// List returns every room ordered by name.
	List(ctx context.Context) ([]*RoomView, error)
}

type RoomListStore interface {
	RoomReadStore
	ListRooms(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomListStore
}

func NewRoomQueries(rooms RoomListStore) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id room.ID) (*RoomView, error) {
	snap, err := q.rooms.RoomByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}
	return &RoomView{
		ID:          snap.ID,
		Name:        snap.Name,
		Capacity:    snap.Capacity,
		Description: snap.Description,
		Location:    snap.Location,
	}, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	return q.rooms.ListRooms(ctx)
}
