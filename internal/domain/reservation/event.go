package reservation

import (
	"time"

	"room-booking/internal/domain/room"

	"github.com/google/uuid"
)

// AdmittedEvent is published once per committed admission.
type AdmittedEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	ReservationID ID        `json:"reservationId"`
	RoomID        room.ID   `json:"roomId"`
	RoomName      string    `json:"roomName"`
	ReserverName  string    `json:"reserverName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func NewAdmittedEvent(r *Reservation, roomName string, occurredAt time.Time) AdmittedEvent {
	return AdmittedEvent{
		EventID:       uuid.New(),
		ReservationID: r.ID(),
		RoomID:        r.RoomID(),
		RoomName:      roomName,
		ReserverName:  r.ReserverName(),
		Date:          r.Date().String(),
		StartTime:     r.StartTime().String(),
		EndTime:       r.EndTime().String(),
		OccurredAt:    occurredAt,
	}
}
