//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"

	"github.com/stretchr/testify/assert"
)

func TestReservation(t *testing.T) {
	day := reservation.NewDate(2024, time.June, 3)
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	t.Run("new reservation is not admitted yet", func(t *testing.T) {
		notes := "standup"
		r := reservation.New(room.ID(1), "Alice", slot(day, 9, 0, 10, 0), &notes, now)

		assert.Equal(t, reservation.ID(0), r.ID())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, r.CreatedAt(), r.UpdatedAt())

		notes = "changed"
		assert.Equal(t, "standup", *r.Notes(), "notes are copied on construction")
	})

	t.Run("updatedAt is strictly monotonic", func(t *testing.T) {
		r := reservation.New(room.ID(1), "Alice", slot(day, 9, 0, 10, 0), nil, now)

		r.Reschedule("Alice", slot(day, 10, 0, 11, 0), nil, now)
		first := r.UpdatedAt()
		assert.True(t, first.After(now))

		r.Reschedule("Alice", slot(day, 11, 0, 12, 0), nil, now.Add(-time.Hour))
		assert.True(t, r.UpdatedAt().After(first))

		later := now.Add(time.Hour)
		r.Reschedule("Alice", slot(day, 12, 0, 13, 0), nil, later)
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("conflicts exclude self and other rooms", func(t *testing.T) {
		a := reservation.Reconstruct(1, room.ID(1), "Alice", slot(day, 9, 0, 10, 0), nil, now, now)
		self := reservation.Reconstruct(1, room.ID(1), "Alice", slot(day, 9, 30, 10, 30), nil, now, now)
		other := reservation.Reconstruct(2, room.ID(1), "Bob", slot(day, 9, 30, 10, 30), nil, now, now)
		otherRoom := reservation.Reconstruct(3, room.ID(2), "Carol", slot(day, 9, 30, 10, 30), nil, now, now)

		assert.False(t, self.ConflictsWith(a))
		assert.True(t, other.ConflictsWith(a))
		assert.False(t, otherRoom.ConflictsWith(a))
		assert.False(t, a.ConflictsWith(nil))
	})

	t.Run("admitted event carries the committed values", func(t *testing.T) {
		r := reservation.Reconstruct(7, room.ID(3), "Alice", slot(day, 9, 0, 10, 0), nil, now, now)
		ev := reservation.NewAdmittedEvent(r, "R1", now)

		assert.Equal(t, reservation.ID(7), ev.ReservationID)
		assert.Equal(t, room.ID(3), ev.RoomID)
		assert.Equal(t, "R1", ev.RoomName)
		assert.Equal(t, "2024-06-03", ev.Date)
		assert.Equal(t, "09:00", ev.StartTime)
		assert.Equal(t, "10:00", ev.EndTime)
		assert.NotEqual(t, ev.EventID, reservation.NewAdmittedEvent(r, "R1", now).EventID)
	})
}
