package shared

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
)

// RoomSnapshot is the read-only view of a room the core works with.
type RoomSnapshot struct {
	ID          room.ID
	Name        string
	Capacity    int
	Description *string
	Location    *string
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID     reservation.ID
	RoomID room.ID
}
