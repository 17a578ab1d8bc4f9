package queries

import (
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID           reservation.ID `json:"id"`
	RoomID       room.ID        `json:"roomId"`
	RoomName     string         `json:"roomName"`
	ReserverName string         `json:"reserverName"`
	Date         string         `json:"date"`
	StartTime    string         `json:"startTime"`
	EndTime      string         `json:"endTime"`
	Notes        *string        `json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// RoomReservationFilter narrows a room listing. Date wins over the range; the range is
// inclusive and applies only when both ends are set.
type RoomReservationFilter struct {
	Date      *reservation.Date
	StartDate *reservation.Date
	EndDate   *reservation.Date
}

// DateRange resolves the filter to inclusive bounds. Nil bounds are open.
func (f RoomReservationFilter) DateRange() (from, to *reservation.Date) {
	if f.Date != nil {
		return f.Date, f.Date
	}
	if f.StartDate != nil && f.EndDate != nil {
		return f.StartDate, f.EndDate
	}
	return nil, nil
}

type RoomView struct {
	ID          room.ID `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}
