package queries

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id reservation.ID) (*ReservationView, error)
	ListByRoom(ctx context.Context, roomID room.ID, filter RoomReservationFilter) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id reservation.ID) (*ReservationView, error)
	// FindByRoom returns the room's reservations ordered by date then start time.
	FindByRoom(ctx context.Context, roomID room.ID, from, to *reservation.Date) ([]*ReservationView, error)
}

type RoomReadStore interface {
	RoomByID(ctx context.Context, id room.ID) (*shared.RoomSnapshot, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
	rooms        RoomReadStore
}

func NewReservationQueries(reservations ReservationReadStore, rooms RoomReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations, rooms: rooms}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id reservation.ID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRoom(ctx context.Context, roomID room.ID, filter RoomReservationFilter) ([]*ReservationView, error) {
	from, to := filter.DateRange()
	if from != nil && to != nil && to.Before(*from) {
		return nil, errs.Wrapf(errs.ErrInvalidDate, "endDate %s is before startDate %s", to, from)
	}

	if _, err := q.rooms.RoomByID(ctx, roomID); err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}

	return q.reservations.FindByRoom(ctx, roomID, from, to)
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
