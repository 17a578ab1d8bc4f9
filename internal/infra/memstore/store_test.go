//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	day = reservation.NewDate(2024, time.June, 3)
)

func slot(d reservation.Date, sh, eh int) reservation.Slot {
	return reservation.Slot{Date: d, Start: reservation.MustTimeOfDay(sh, 0), End: reservation.MustTimeOfDay(eh, 0)}
}

func insert(t *testing.T, s *memstore.Store, res *reservation.Reservation) reservation.ID {
	t.Helper()
	var id reservation.ID
	err := s.WithinRoom(context.Background(), res.RoomID(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Reservations().Insert(ctx, res)
		return err
	})
	require.NoError(t, err)
	return id
}

func TestWithinRoom(t *testing.T) {
	t.Run("commits staged writes", func(t *testing.T) {
		s := memstore.New()
		roomID, err := s.PutRoom("R1", 4, nil, nil)
		require.NoError(t, err)

		id := insert(t, s, reservation.New(roomID, "Alice", slot(day, 9, 10), nil, now))

		view, err := s.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Alice", view.ReserverName)
		assert.Equal(t, "R1", view.RoomName)

		snap, err := s.ReservationByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, roomID, snap.RoomID)
	})

	t.Run("discards staged writes when fn fails", func(t *testing.T) {
		s := memstore.New()
		roomID, err := s.PutRoom("R1", 4, nil, nil)
		require.NoError(t, err)

		boom := errors.New("boom")
		var staged reservation.ID
		err = s.WithinRoom(context.Background(), roomID, func(ctx context.Context, tx shared.Tx) error {
			staged, err = tx.Reservations().Insert(ctx, reservation.New(roomID, "Alice", slot(day, 9, 10), nil, now))
			require.NoError(t, err)
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.FindByID(context.Background(), staged)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		views, err := s.FindByRoom(context.Background(), roomID, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("aborts when the context ends before commit", func(t *testing.T) {
		s := memstore.New()
		roomID, err := s.PutRoom("R1", 4, nil, nil)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		err = s.WithinRoom(ctx, roomID, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().Insert(ctx, reservation.New(roomID, "Alice", slot(day, 9, 10), nil, now))
			cancel()
			return err
		})
		require.ErrorIs(t, err, context.Canceled)

		views, err := s.FindByRoom(context.Background(), roomID, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("unknown room", func(t *testing.T) {
		s := memstore.New()
		err := s.WithinRoom(context.Background(), 42, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("waiting for a held room respects the context", func(t *testing.T) {
		s := memstore.New()
		roomID, err := s.PutRoom("R1", 4, nil, nil)
		require.NoError(t, err)

		held := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_ = s.WithinRoom(context.Background(), roomID, func(context.Context, shared.Tx) error {
				close(held)
				<-release
				return nil
			})
		}()
		<-held
		defer close(release)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err = s.WithinRoom(ctx, roomID, func(context.Context, shared.Tx) error { return nil })
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestTxReplaceAndDelete(t *testing.T) {
	s := memstore.New()
	roomID, err := s.PutRoom("R1", 4, nil, nil)
	require.NoError(t, err)
	id := insert(t, s, reservation.New(roomID, "Alice", slot(day, 9, 10), nil, now))

	err = s.WithinRoom(context.Background(), roomID, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().LoadRoomReservations(ctx, roomID)
		require.NoError(t, err)
		require.Len(t, existing, 1)

		res := existing[0]
		res.Reschedule("Alice", slot(day, 14, 15), nil, now.Add(time.Minute))
		return tx.Reservations().Replace(ctx, res)
	})
	require.NoError(t, err)

	view, err := s.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "14:00", view.StartTime)

	err = s.WithinRoom(context.Background(), roomID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	})
	require.NoError(t, err)

	_, err = s.ReservationByID(context.Background(), id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = s.WithinRoom(context.Background(), roomID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	})
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestFindByRoom(t *testing.T) {
	s := memstore.New()
	roomID, err := s.PutRoom("R1", 4, nil, nil)
	require.NoError(t, err)

	next := day.AddDays(1)
	insert(t, s, reservation.New(roomID, "Late", slot(next, 9, 10), nil, now))
	insert(t, s, reservation.New(roomID, "Afternoon", slot(day, 14, 15), nil, now))
	insert(t, s, reservation.New(roomID, "Morning", slot(day, 9, 10), nil, now))

	names := func(views []*queries.ReservationView) []string {
		out := make([]string, len(views))
		for i, v := range views {
			out[i] = v.ReserverName
		}
		return out
	}

	all, err := s.FindByRoom(context.Background(), roomID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Morning", "Afternoon", "Late"}, names(all))

	sameDay, err := s.FindByRoom(context.Background(), roomID, &day, &day)
	require.NoError(t, err)
	assert.Equal(t, []string{"Morning", "Afternoon"}, names(sameDay))

	unknown, err := s.FindByRoom(context.Background(), 99, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestDeleteRoom(t *testing.T) {
	s := memstore.New()
	roomID, err := s.PutRoom("R1", 4, nil, nil)
	require.NoError(t, err)
	id := insert(t, s, reservation.New(roomID, "Alice", slot(day, 9, 10), nil, now))

	err = s.DeleteRoom(context.Background(), roomID)
	assert.True(t, errs.Is(err, errs.ErrRoomInUse))

	require.NoError(t, s.WithinRoom(context.Background(), roomID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	}))
	require.NoError(t, s.DeleteRoom(context.Background(), roomID))

	_, err = s.RoomByID(context.Background(), roomID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.True(t, errs.Is(s.DeleteRoom(context.Background(), roomID), errs.ErrRoomNotFound))
}

func TestListRooms(t *testing.T) {
	s := memstore.New()
	_, err := s.PutRoom("Quick Sync", 4, nil, nil)
	require.NoError(t, err)
	_, err = s.PutRoom("Board Room", 16, nil, nil)
	require.NoError(t, err)

	rooms, err := s.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Board Room", rooms[0].Name)
	assert.Equal(t, "Quick Sync", rooms[1].Name)

	_, err = s.PutRoom("", 4, nil, nil)
	assert.True(t, errs.Is(err, errs.ErrInvalidRoomDetails))
}
