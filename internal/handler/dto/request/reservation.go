package request

import (
	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/patch"
	"room-booking/internal/usecase/validation"
)

type CreateReservationRequest struct {
	RoomID       int64   `json:"roomId" binding:"required,gt=0"`
	ReserverName string  `json:"reserverName"`
	Date         string  `json:"date" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required"`
	EndTime      string  `json:"endTime" binding:"required"`
	Notes        *string `json:"notes,omitempty"`
}

// ReplaceReservationRequest is the PUT body. Omitted notes are cleared.
type ReplaceReservationRequest struct {
	ReserverName string  `json:"reserverName"`
	Date         string  `json:"date" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required"`
	EndTime      string  `json:"endTime" binding:"required"`
	Notes        *string `json:"notes,omitempty"`
}

// UpdateReservationRequest is the PATCH body. Omitted fields keep their current value.
// The room of a reservation cannot be changed.
type UpdateReservationRequest struct {
	ReserverName *string `json:"reserverName,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	EndTime      *string `json:"endTime,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	replaceNotes bool
}

func (r CreateReservationRequest) ToInput() (validation.Input, error) {
	slot, err := parseSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return validation.Input{}, err
	}
	return validation.Input{
		RoomID:       room.ID(r.RoomID),
		ReserverName: r.ReserverName,
		Slot:         slot,
		Notes:        r.Notes,
	}, nil
}

func (r ReplaceReservationRequest) AsUpdate() UpdateReservationRequest {
	return UpdateReservationRequest{
		ReserverName: &r.ReserverName,
		Date:         &r.Date,
		StartTime:    &r.StartTime,
		EndTime:      &r.EndTime,
		Notes:        r.Notes,
		replaceNotes: true,
	}
}

// ToInput merges the request over the current state of the reservation.
func (r UpdateReservationRequest) ToInput(current *reservation.Reservation) (validation.Input, error) {
	slot, err := parseSlot(
		patch.Coalesce(r.Date, current.Date().String()),
		patch.Coalesce(r.StartTime, current.StartTime().String()),
		patch.Coalesce(r.EndTime, current.EndTime().String()),
	)
	if err != nil {
		return validation.Input{}, err
	}

	notes := r.Notes
	if notes == nil && !r.replaceNotes {
		notes = current.Notes()
	}

	return validation.Input{
		RoomID:       current.RoomID(),
		ReserverName: patch.Coalesce(r.ReserverName, current.ReserverName()),
		Slot:         slot,
		Notes:        notes,
	}, nil
}

func parseSlot(date, start, end string) (reservation.Slot, error) {
	d, err := reservation.ParseDate(date)
	if err != nil {
		return reservation.Slot{}, &FormatError{Field: validation.FieldDate, Err: err}
	}
	s, err := reservation.ParseTimeOfDay(start)
	if err != nil {
		return reservation.Slot{}, &FormatError{Field: validation.FieldStartTime, Err: err}
	}
	e, err := reservation.ParseTimeOfDay(end)
	if err != nil {
		return reservation.Slot{}, &FormatError{Field: validation.FieldEndTime, Err: err}
	}
	return reservation.Slot{Date: d, Start: s, End: e}, nil
}
