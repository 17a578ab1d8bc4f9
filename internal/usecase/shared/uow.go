package shared

import (
	"context"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
)

type UnitOfWork interface {
	// WithinRoom runs fn while holding exclusive access to one room's reservation set.
	// Commits when fn returns nil and aborts otherwise. Calls for different rooms do not
	// wait on each other. Fails with a not-found repository error if the room does not exist.
	WithinRoom(ctx context.Context, roomID room.ID, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: non-locking reads used before entering WithinRoom
	CommandReads() CommandReads
}

type Tx interface {
	// Room is the room locked by this unit of work.
	Room() RoomSnapshot
	Reservations() ReservationStore
}

type CommandReads interface {
	RoomByID(ctx context.Context, id room.ID) (*RoomSnapshot, error)
	ReservationByID(ctx context.Context, id reservation.ID) (*ReservationSnapshot, error)
}

// ReservationStore is only reachable through Tx, so every call runs under the room lock.
type ReservationStore interface {
	// LoadRoomReservations returns the room's reservations ordered by (date, start).
	LoadRoomReservations(ctx context.Context, roomID room.ID) ([]*reservation.Reservation, error)
	Insert(ctx context.Context, res *reservation.Reservation) (reservation.ID, error)
	Replace(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id reservation.ID) error
}
