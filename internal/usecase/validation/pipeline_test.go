//go:build unit

package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"
	validationmock "room-booking/tests/mock/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)

func validInput() validation.Input {
	notes := "quarterly planning"
	return validation.Input{
		RoomID:       room.ID(1),
		ReserverName: "Alice",
		Slot: reservation.Slot{
			Date:  reservation.NewDate(2024, time.June, 4),
			Start: reservation.MustTimeOfDay(9, 0),
			End:   reservation.MustTimeOfDay(10, 0),
		},
		Notes: &notes,
	}
}

func newPipeline(t *testing.T) (*validation.Pipeline, *validationmock.MockRoomLookup) {
	t.Helper()
	ctrl := gomock.NewController(t)
	rooms := validationmock.NewMockRoomLookup(ctrl)
	return validation.NewPipeline(rooms, clock.NewMockClock(now)), rooms
}

func expectRoom(rooms *validationmock.MockRoomLookup) {
	rooms.EXPECT().RoomByID(gomock.Any(), room.ID(1)).
		Return(&shared.RoomSnapshot{ID: 1, Name: "R1", Capacity: 8}, nil).AnyTimes()
}

func TestPipeline_Validate(t *testing.T) {
	t.Run("valid input yields a candidate", func(t *testing.T) {
		p, rooms := newPipeline(t)
		expectRoom(rooms)

		in := validInput()
		in.ReserverName = "  Alice  "
		c, err := p.Validate(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, room.ID(1), c.RoomID())
		assert.Equal(t, "R1", c.Room().Name)
		assert.Equal(t, "Alice", c.ReserverName())
		assert.Equal(t, in.Slot, c.Slot())
		require.NotNil(t, c.Notes())
		assert.Equal(t, "quarterly planning", *c.Notes())
	})

	tests := []struct {
		name      string
		mutate    func(in *validation.Input)
		wantKind  validation.Kind
		wantField string
		sentinel  error
	}{
		{
			name:      "blank reserver name",
			mutate:    func(in *validation.Input) { in.ReserverName = "   " },
			wantKind:  validation.KindMissingField,
			wantField: validation.FieldReserverName,
			sentinel:  errs.ErrMissingField,
		},
		{
			name:      "reserver name too long",
			mutate:    func(in *validation.Input) { in.ReserverName = strings.Repeat("a", 256) },
			wantKind:  validation.KindFieldTooLong,
			wantField: validation.FieldReserverName,
			sentinel:  errs.ErrFieldTooLong,
		},
		{
			name:      "notes too long",
			mutate:    func(in *validation.Input) { n := strings.Repeat("n", 501); in.Notes = &n },
			wantKind:  validation.KindFieldTooLong,
			wantField: validation.FieldNotes,
			sentinel:  errs.ErrFieldTooLong,
		},
		{
			name:      "zero length interval",
			mutate:    func(in *validation.Input) { in.Slot.End = in.Slot.Start },
			wantKind:  validation.KindInvalidInterval,
			wantField: validation.FieldEndTime,
			sentinel:  errs.ErrInvalidInterval,
		},
		{
			name: "inverted interval",
			mutate: func(in *validation.Input) {
				in.Slot.Start, in.Slot.End = in.Slot.End, in.Slot.Start
			},
			wantKind:  validation.KindInvalidInterval,
			wantField: validation.FieldEndTime,
			sentinel:  errs.ErrInvalidInterval,
		},
		{
			name: "today with elapsed start",
			mutate: func(in *validation.Input) {
				in.Slot.Date = reservation.DateOf(now)
				in.Slot.Start = reservation.MustTimeOfDay(11, 0)
				in.Slot.End = reservation.MustTimeOfDay(13, 0)
			},
			wantKind:  validation.KindReservationInPast,
			wantField: validation.FieldStartTime,
			sentinel:  errs.ErrReservationInPast,
		},
		{
			name: "start exactly now",
			mutate: func(in *validation.Input) {
				in.Slot.Date = reservation.DateOf(now)
				in.Slot.Start = reservation.MustTimeOfDay(12, 0)
				in.Slot.End = reservation.MustTimeOfDay(13, 0)
			},
			wantKind:  validation.KindReservationInPast,
			wantField: validation.FieldStartTime,
			sentinel:  errs.ErrReservationInPast,
		},
		{
			name:      "yesterday",
			mutate:    func(in *validation.Input) { in.Slot.Date = reservation.DateOf(now).AddDays(-1) },
			wantKind:  validation.KindReservationInPast,
			wantField: validation.FieldDate,
			sentinel:  errs.ErrReservationInPast,
		},
		{
			name: "ordering is checked before the past rule",
			mutate: func(in *validation.Input) {
				in.Slot.Date = reservation.DateOf(now).AddDays(-1)
				in.Slot.End = in.Slot.Start
			},
			wantKind:  validation.KindInvalidInterval,
			wantField: validation.FieldEndTime,
			sentinel:  errs.ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, rooms := newPipeline(t)
			expectRoom(rooms)

			in := validInput()
			tt.mutate(&in)
			_, err := p.Validate(context.Background(), in)
			require.Error(t, err)

			var verr *validation.Error
			require.True(t, errs.As(err, &verr))
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.True(t, errs.Is(err, tt.sentinel))
		})
	}

	t.Run("tomorrow at the same time is accepted", func(t *testing.T) {
		p, rooms := newPipeline(t)
		expectRoom(rooms)

		in := validInput()
		in.Slot.Date = reservation.DateOf(now).AddDays(1)
		in.Slot.Start = reservation.MustTimeOfDay(11, 0)
		in.Slot.End = reservation.MustTimeOfDay(13, 0)
		_, err := p.Validate(context.Background(), in)
		assert.NoError(t, err)
	})

	t.Run("unknown room short-circuits before field checks", func(t *testing.T) {
		p, rooms := newPipeline(t)
		rooms.EXPECT().RoomByID(gomock.Any(), room.ID(99)).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "room not found")).Times(1)

		in := validInput()
		in.RoomID = 99
		in.ReserverName = ""
		_, err := p.Validate(context.Background(), in)

		var verr *validation.Error
		require.True(t, errs.As(err, &verr))
		assert.Equal(t, validation.KindRoomNotFound, verr.Kind)
		assert.Equal(t, validation.FieldRoomID, verr.Field)
		assert.True(t, errs.Is(err, errs.ErrRoomNotFound))
	})

	t.Run("lookup failure surfaces as store unavailable", func(t *testing.T) {
		p, rooms := newPipeline(t)
		rooms.EXPECT().RoomByID(gomock.Any(), room.ID(1)).
			Return(nil, infra.WrapRepoErr("query room", errors.New("connection refused"))).Times(1)

		_, err := p.Validate(context.Background(), validInput())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))

		var verr *validation.Error
		assert.False(t, errs.As(err, &verr))
	})
}

func TestPipeline_ValidateInRoom(t *testing.T) {
	held := shared.RoomSnapshot{ID: 1, Name: "R1", Capacity: 8}

	t.Run("uses the held room without a lookup", func(t *testing.T) {
		p, _ := newPipeline(t)

		c, err := p.ValidateInRoom(context.Background(), held, validInput())
		require.NoError(t, err)
		assert.Equal(t, held, c.Room())
		assert.Equal(t, "Alice", c.ReserverName())
	})

	t.Run("input for another room is rejected", func(t *testing.T) {
		p, _ := newPipeline(t)
		in := validInput()
		in.RoomID = 2

		_, err := p.ValidateInRoom(context.Background(), held, in)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, validation.FieldRoomID, verr.Field)
	})

	t.Run("remaining rules still apply", func(t *testing.T) {
		p, _ := newPipeline(t)
		in := validInput()
		in.Slot.End = in.Slot.Start

		_, err := p.ValidateInRoom(context.Background(), held, in)
		assert.True(t, errs.Is(err, errs.ErrInvalidInterval))
	})
}
