package reservation

import (
	"time"

	"room-booking/internal/domain/room"
)

type Reservation struct {
	id           ID
	roomID       room.ID
	reserverName string
	slot         Slot
	notes        *string
	createdAt    time.Time
	updatedAt    time.Time
}

// New builds a reservation that has not been admitted yet. Callers go through the
// validation pipeline first; New itself only copies the values.
func New(roomID room.ID, reserverName string, slot Slot, notes *string, now time.Time) *Reservation {
	return &Reservation{
		roomID:       roomID,
		reserverName: reserverName,
		slot:         slot,
		notes:        copyNotes(notes),
		createdAt:    now,
		updatedAt:    now,
	}
}

func Reconstruct(
	id ID,
	roomID room.ID,
	reserverName string,
	slot Slot,
	notes *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		roomID:       roomID,
		reserverName: reserverName,
		slot:         slot,
		notes:        copyNotes(notes),
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) AssignID(id ID) {
	r.id = id
}

// Reschedule replaces the mutable fields. updatedAt never moves backwards or stands still,
// even when the clock does.
func (r *Reservation) Reschedule(reserverName string, slot Slot, notes *string, now time.Time) {
	r.reserverName = reserverName
	r.slot = slot
	r.notes = copyNotes(notes)
	if !now.After(r.updatedAt) {
		now = r.updatedAt.Add(time.Microsecond)
	}
	r.updatedAt = now
}

// ConflictsWith is false for the reservation itself.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if other == nil || r.roomID != other.roomID {
		return false
	}
	if r.id != 0 && r.id == other.id {
		return false
	}
	return Overlaps(r.slot, other.slot)
}

// Clone returns a deep copy.
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.notes = copyNotes(r.notes)
	return &c
}

func copyNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	v := *notes
	return &v
}

func (r *Reservation) ID() ID               { return r.id }
func (r *Reservation) RoomID() room.ID      { return r.roomID }
func (r *Reservation) ReserverName() string { return r.reserverName }
func (r *Reservation) Slot() Slot           { return r.slot }
func (r *Reservation) Date() Date           { return r.slot.Date }
func (r *Reservation) StartTime() TimeOfDay { return r.slot.Start }
func (r *Reservation) EndTime() TimeOfDay   { return r.slot.End }
func (r *Reservation) Notes() *string       { return copyNotes(r.notes) }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
