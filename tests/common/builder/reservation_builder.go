//go:build unit || e2e

package builder

import (
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	sqlc "room-booking/internal/infra/sqlc/generated"
	"room-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID           reservation.ID
	RoomID       room.ID
	RoomName     string
	ReserverName string
	Date         string
	StartTime    string
	EndTime      string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           1,
		RoomID:       1,
		RoomName:     "Meeting Room A",
		ReserverName: "Alice",
		Date:         "2024-06-03",
		StartTime:    "09:00",
		EndTime:      "10:00",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithID(id reservation.ID) *ReservationBuilder {
	r.ID = id
	return r
}

func (r *ReservationBuilder) WithRoomID(id room.ID) *ReservationBuilder {
	r.RoomID = id
	return r
}

func (r *ReservationBuilder) WithReserverName(name string) *ReservationBuilder {
	r.ReserverName = name
	return r
}

func (r *ReservationBuilder) WithSlot(date, start, end string) *ReservationBuilder {
	r.Date = date
	r.StartTime = start
	r.EndTime = end
	return r
}

func (r *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	r.Notes = &notes
	return r
}

// Build methods
func (r *ReservationBuilder) BuildSlot() reservation.Slot {
	d, err := reservation.ParseDate(r.Date)
	if err != nil {
		panic(err)
	}
	s, err := reservation.ParseTimeOfDay(r.StartTime)
	if err != nil {
		panic(err)
	}
	e, err := reservation.ParseTimeOfDay(r.EndTime)
	if err != nil {
		panic(err)
	}
	return reservation.Slot{Date: d, Start: s, End: e}
}

func (r *ReservationBuilder) BuildDomain() *reservation.Reservation {
	res := reservation.New(r.RoomID, r.ReserverName, r.BuildSlot(), r.Notes, r.CreatedAt)
	if r.ID != 0 {
		res.AssignID(r.ID)
	}
	return res
}

func (r *ReservationBuilder) BuildInfra() sqlc.Reservation {
	slot := r.BuildSlot()
	row := sqlc.Reservation{
		ID:               int64(r.ID),
		ConferenceRoomID: int64(r.RoomID),
		ReserverName:     r.ReserverName,
		Date:             pgtype.Date{Time: slot.Date.Time(), Valid: true},
		StartTime:        pgtype.Time{Microseconds: int64(slot.Start.Seconds()) * 1_000_000, Valid: true},
		EndTime:          pgtype.Time{Microseconds: int64(slot.End.Seconds()) * 1_000_000, Valid: true},
		CreatedAt:        pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
	if r.Notes != nil {
		row.Notes = pgtype.Text{String: *r.Notes, Valid: true}
	}
	return row
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:           r.ID,
		RoomID:       r.RoomID,
		RoomName:     r.RoomName,
		ReserverName: r.ReserverName,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:       int64(r.RoomID),
		ReserverName: r.ReserverName,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
	}
}

func (r *ReservationBuilder) BuildReplaceRequestDTO() reqdto.ReplaceReservationRequest {
	return reqdto.ReplaceReservationRequest{
		ReserverName: r.ReserverName,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
	}
}

func NewRoomView(id room.ID, name string, capacity int) *queries.RoomView {
	return &queries.RoomView{ID: id, Name: name, Capacity: capacity}
}
