//go:build unit

package admission_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memstore"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/admission"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"
)

type recordingHook struct {
	mu     sync.Mutex
	events []reservation.AdmittedEvent
}

func (h *recordingHook) Admitted(_ context.Context, ev reservation.AdmittedEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, ev)
}

func (h *recordingHook) Events() []reservation.AdmittedEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]reservation.AdmittedEvent(nil), h.events...)
}

type EngineTestSuite struct {
	suite.Suite
	store    *memstore.Store
	clock    *clock.MockClock
	hook     *recordingHook
	pipeline *validation.Pipeline
	engine   *admission.Engine
	r1       room.ID
	r2       room.ID
	day      reservation.Date
}

func (s *EngineTestSuite) SetupTest() {
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC))
	s.hook = &recordingHook{}
	s.pipeline = validation.NewPipeline(s.store, s.clock)
	s.engine = newEngine(s.store, s.clock, s.hook, time.Second)
	s.day = reservation.NewDate(2024, time.June, 3)

	var err error
	s.r1, err = s.store.PutRoom("R1", 8, nil, nil)
	s.Require().NoError(err)
	s.r2, err = s.store.PutRoom("R2", 4, nil, nil)
	s.Require().NoError(err)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func newEngine(uow shared.UnitOfWork, clk clock.Clock, hook admission.Hook, timeout time.Duration) *admission.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return admission.NewEngine(uow, clk, hook, admission.Config{Timeout: timeout}, logger, noop.NewTracerProvider())
}

func (s *EngineTestSuite) candidate(roomID room.ID, name string, sh, sm, eh, em int) validation.Candidate {
	c, err := s.pipeline.Validate(context.Background(), validation.Input{
		RoomID:       roomID,
		ReserverName: name,
		Slot: reservation.Slot{
			Date:  s.day,
			Start: reservation.MustTimeOfDay(sh, sm),
			End:   reservation.MustTimeOfDay(eh, em),
		},
	})
	s.Require().NoError(err)
	return c
}

func (s *EngineTestSuite) roomSlots(roomID room.ID) []string {
	views, err := s.store.FindByRoom(context.Background(), roomID, nil, nil)
	s.Require().NoError(err)
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ReserverName + " " + v.StartTime + "-" + v.EndTime
	}
	return out
}

func (s *EngineTestSuite) TestScenario() {
	ctx := context.Background()

	aliceID, err := s.engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().NoError(err)
	s.Equal(reservation.ID(1), aliceID)

	_, err = s.engine.Admit(ctx, s.candidate(s.r1, "Bob", 9, 30, 10, 30))
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrReservationConflict))
	conflictID, ok := admission.ConflictingID(err)
	s.True(ok)
	s.Equal(aliceID, conflictID)

	carolID, err := s.engine.Admit(ctx, s.candidate(s.r1, "Carol", 10, 0, 10, 30))
	s.Require().NoError(err, "adjacent slot must be admitted")

	err = s.engine.ReAdmit(ctx, aliceID, s.candidate(s.r1, "Alice", 9, 45, 10, 15))
	s.Require().Error(err)
	conflictID, ok = admission.ConflictingID(err)
	s.True(ok)
	s.Equal(carolID, conflictID)

	view, err := s.store.FindByID(ctx, aliceID)
	s.Require().NoError(err)
	s.Equal("09:00", view.StartTime)
	s.Equal("10:00", view.EndTime)

	if diff := cmp.Diff([]string{"Alice 09:00-10:00", "Carol 10:00-10:30"}, s.roomSlots(s.r1)); diff != "" {
		s.Failf("unexpected room state", "(-want +got):\n%s", diff)
	}

	events := s.hook.Events()
	s.Require().Len(events, 2)
	s.Equal(aliceID, events[0].ReservationID)
	s.Equal("R1", events[0].RoomName)
	s.Equal("Alice", events[0].ReserverName)
	s.Equal("2024-06-03", events[0].Date)
	s.Equal(carolID, events[1].ReservationID)
}

func (s *EngineTestSuite) TestReAdmitSelfExclusion() {
	ctx := context.Background()

	id, err := s.engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().NoError(err)
	before, err := s.store.FindByID(ctx, id)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	err = s.engine.ReAdmit(ctx, id, s.candidate(s.r1, "Alice B.", 9, 30, 10, 30))
	s.Require().NoError(err)

	after, err := s.store.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("09:30", after.StartTime)
	s.Equal("Alice B.", after.ReserverName)
	s.Equal(before.CreatedAt, after.CreatedAt)
	s.True(after.UpdatedAt.After(before.UpdatedAt))
	s.Len(s.hook.Events(), 1, "re-admission does not publish")
}

func (s *EngineTestSuite) TestWithdrawThenReAdmitSameSlot() {
	ctx := context.Background()

	id, err := s.engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().NoError(err)

	s.Require().NoError(s.engine.Withdraw(ctx, id))

	err = s.engine.Withdraw(ctx, id)
	s.True(errs.Is(err, errs.ErrReservationNotFound))

	_, err = s.engine.Admit(ctx, s.candidate(s.r1, "Bob", 9, 0, 10, 0))
	s.NoError(err)
}

func (s *EngineTestSuite) TestReAdmitUnknownReservation() {
	err := s.engine.ReAdmit(context.Background(), 42, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.True(errs.Is(err, errs.ErrReservationNotFound))
	s.Empty(s.roomSlots(s.r1))
}

func (s *EngineTestSuite) TestAmend() {
	ctx := context.Background()

	aliceID, err := s.engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().NoError(err)
	carolID, err := s.engine.Admit(ctx, s.candidate(s.r1, "Carol", 11, 0, 12, 0))
	s.Require().NoError(err)

	s.Run("amendment sees the locked reservation and its room", func() {
		err := s.engine.Amend(ctx, aliceID, func(ctx context.Context, current *reservation.Reservation, rm shared.RoomSnapshot) (validation.Candidate, error) {
			s.Equal(aliceID, current.ID())
			s.Equal("R1", rm.Name)
			return s.pipeline.ValidateInRoom(ctx, rm, validation.Input{
				RoomID:       current.RoomID(),
				ReserverName: current.ReserverName() + " B.",
				Slot:         current.Slot(),
			})
		})
		s.Require().NoError(err)

		view, err := s.store.FindByID(ctx, aliceID)
		s.Require().NoError(err)
		s.Equal("Alice B.", view.ReserverName)
	})

	s.Run("amendment error is returned unchanged and nothing is written", func() {
		rejected := errors.New("malformed start time")
		err := s.engine.Amend(ctx, aliceID, func(context.Context, *reservation.Reservation, shared.RoomSnapshot) (validation.Candidate, error) {
			return validation.Candidate{}, rejected
		})
		s.Same(rejected, err)
		s.False(errs.Is(err, errs.ErrStoreUnavailable))
		s.Equal([]string{"Alice B. 09:00-10:00", "Carol 11:00-12:00"}, s.roomSlots(s.r1))
	})

	s.Run("overlap with another reservation", func() {
		err := s.engine.Amend(ctx, aliceID, func(context.Context, *reservation.Reservation, shared.RoomSnapshot) (validation.Candidate, error) {
			return s.candidate(s.r1, "Alice", 11, 30, 12, 30), nil
		})
		conflictID, ok := admission.ConflictingID(err)
		s.True(ok)
		s.Equal(carolID, conflictID)
	})

	s.Run("unknown reservation", func() {
		err := s.engine.Amend(ctx, 42, func(context.Context, *reservation.Reservation, shared.RoomSnapshot) (validation.Candidate, error) {
			s.Fail("amendment must not run")
			return validation.Candidate{}, nil
		})
		s.True(errs.Is(err, errs.ErrReservationNotFound))
	})
}

func (s *EngineTestSuite) TestOverlapIsScopedPerRoom() {
	ctx := context.Background()

	_, err := s.engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().NoError(err)
	_, err = s.engine.Admit(ctx, s.candidate(s.r2, "Bob", 9, 0, 10, 0))
	s.NoError(err)
}

func (s *EngineTestSuite) TestConcurrentAdmitsOfOneSlot() {
	const n = 64
	ctx := context.Background()
	c := s.candidate(s.r1, "racer", 14, 0, 15, 0)

	var admitted, conflicts atomic.Int32
	var g errgroup.Group
	for range n {
		g.Go(func() error {
			_, err := s.engine.Admit(ctx, c)
			switch {
			case err == nil:
				admitted.Add(1)
			case errs.Is(err, errs.ErrReservationConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	s.Equal(int32(1), admitted.Load())
	s.Equal(int32(n-1), conflicts.Load())
	s.Len(s.roomSlots(s.r1), 1)
	s.Len(s.hook.Events(), 1)
}

func (s *EngineTestSuite) TestConcurrentStaggeredSlots() {
	ctx := context.Background()

	// Every half hour from 08:00, one hour long: neighbours overlap, every other one does not.
	var g errgroup.Group
	var admitted atomic.Int32
	for i := range 16 {
		start := 8*60 + i*30
		c := s.candidate(s.r1, "racer", start/60, start%60, (start+60)/60, (start+60)%60)
		g.Go(func() error {
			_, err := s.engine.Admit(ctx, c)
			if err == nil {
				admitted.Add(1)
				return nil
			}
			if errs.Is(err, errs.ErrReservationConflict) {
				return nil
			}
			return err
		})
	}
	s.Require().NoError(g.Wait())

	views, err := s.store.FindByRoom(ctx, s.r1, nil, nil)
	s.Require().NoError(err)
	s.Equal(int(admitted.Load()), len(views))
	for i := 1; i < len(views); i++ {
		s.LessOrEqual(views[i-1].EndTime, views[i].StartTime, "admitted reservations must not overlap")
	}
}

func (s *EngineTestSuite) TestDifferentRoomsDoNotWait() {
	ctx := context.Background()
	held := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = s.store.WithinRoom(ctx, s.r1, func(context.Context, shared.Tx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	done := make(chan error, 1)
	go func() {
		_, err := s.engine.Admit(ctx, s.candidate(s.r2, "Bob", 9, 0, 10, 0))
		done <- err
	}()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("admission to another room blocked on a held room")
	}
}

func (s *EngineTestSuite) TestTimeoutWhileRoomIsHeld() {
	ctx := context.Background()
	held := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_ = s.store.WithinRoom(ctx, s.r1, func(context.Context, shared.Tx) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	engine := newEngine(s.store, s.clock, s.hook, 50*time.Millisecond)
	_, err := engine.Admit(ctx, s.candidate(s.r1, "Alice", 9, 0, 10, 0))
	s.Require().Error(err)
	s.True(errs.Is(err, errs.ErrTimeout))
	s.Empty(s.hook.Events())
}

func (s *EngineTestSuite) TestDeletedRoom() {
	c := s.candidate(s.r2, "Alice", 9, 0, 10, 0)
	s.Require().NoError(s.store.DeleteRoom(context.Background(), s.r2))

	_, err := s.engine.Admit(context.Background(), c)
	s.True(errs.Is(err, errs.ErrRoomNotFound))
}

type failingUoW struct {
	err error
}

func (f failingUoW) WithinRoom(context.Context, room.ID, func(context.Context, shared.Tx) error) error {
	return f.err
}

func (f failingUoW) CommandReads() shared.CommandReads {
	return failingReads{}
}

type failingReads struct{}

func (failingReads) RoomByID(context.Context, room.ID) (*shared.RoomSnapshot, error) {
	return &shared.RoomSnapshot{ID: 1, Name: "R1", Capacity: 8}, nil
}

func (failingReads) ReservationByID(_ context.Context, id reservation.ID) (*shared.ReservationSnapshot, error) {
	return &shared.ReservationSnapshot{ID: id, RoomID: 1}, nil
}

func TestEngine_StoreFailures(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC))
	pipeline := validation.NewPipeline(failingReads{}, clk)
	c, err := pipeline.Validate(context.Background(), validation.Input{
		RoomID:       1,
		ReserverName: "Alice",
		Slot: reservation.Slot{
			Date:  reservation.NewDate(2024, time.June, 3),
			Start: reservation.MustTimeOfDay(9, 0),
			End:   reservation.MustTimeOfDay(10, 0),
		},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		storeErr error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "connection failure is store unavailable",
			storeErr: infra.WrapRepoErr("begin transaction", errors.New("connection refused")),
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
			},
		},
		{
			name:     "serialization failure is store unavailable and not retried",
			storeErr: infra.NewRepoErr(infra.KindRetryable, "serialization failure"),
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
			},
		},
		{
			name:     "exclusion constraint is a conflict with unknown holder",
			storeErr: infra.NewRepoErr(infra.KindConflict, "overlap"),
			check: func(t *testing.T, err error) {
				id, ok := admission.ConflictingID(err)
				assert.True(t, ok)
				assert.Equal(t, reservation.ID(0), id)
			},
		},
		{
			name:     "deadline is a timeout",
			storeErr: context.DeadlineExceeded,
			check: func(t *testing.T, err error) {
				assert.True(t, errs.Is(err, errs.ErrTimeout))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := &recordingHook{}
			engine := newEngine(failingUoW{err: tt.storeErr}, clk, hook, time.Second)

			_, err := engine.Admit(context.Background(), c)
			require.Error(t, err)
			tt.check(t, err)

			err = engine.ReAdmit(context.Background(), 1, c)
			require.Error(t, err)
			tt.check(t, err)

			err = engine.Withdraw(context.Background(), 1)
			require.Error(t, err)
			tt.check(t, err)

			assert.Empty(t, hook.Events())
		})
	}
}
