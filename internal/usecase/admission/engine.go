package admission

import (
	"context"
	"log/slog"
	"time"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "room-booking/admission"

// Hook receives the event of every committed admission. It must not block.
type Hook interface {
	Admitted(ctx context.Context, ev reservation.AdmittedEvent)
}

type Config struct {
	// Upper bound on waiting for the room lock plus the store round-trips.
	Timeout time.Duration
}

// Engine decides admissibility. Every decision for a room runs inside that room's unit of
// work, so reading the room's reservations and writing the outcome never interleave with
// another decision for the same room.
type Engine struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	hook    Hook
	timeout time.Duration
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewEngine(
	uow shared.UnitOfWork,
	clk clock.Clock,
	hook Hook,
	cfg Config,
	logger *slog.Logger,
	tp trace.TracerProvider,
) *Engine {
	return &Engine{
		uow:     uow,
		clock:   clk,
		hook:    hook,
		timeout: cfg.Timeout,
		logger:  logger,
		tracer:  tp.Tracer(tracerName),
	}
}

// Admit commits the candidate or reports a *ConflictError naming the first overlapping
// reservation. On conflict nothing is written.
func (e *Engine) Admit(ctx context.Context, c validation.Candidate) (reservation.ID, error) {
	ctx, span := e.tracer.Start(ctx, "admission.Admit", trace.WithAttributes(
		attribute.Int64("room.id", int64(c.RoomID())),
		attribute.String("reservation.slot", c.Slot().String()),
	))
	defer span.End()

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	var (
		admitted *reservation.Reservation
		roomName string
	)
	err := e.uow.WithinRoom(ctx, c.RoomID(), func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().LoadRoomReservations(ctx, c.RoomID())
		if err != nil {
			return err
		}

		res := reservation.New(c.RoomID(), c.ReserverName(), c.Slot(), c.Notes(), e.clock.Now())
		if clash := firstConflict(res, existing); clash != nil {
			return &ConflictError{ReservationID: clash.ID()}
		}

		id, err := tx.Reservations().Insert(ctx, res)
		if err != nil {
			return err
		}
		res.AssignID(id)

		admitted = res
		roomName = tx.Room().Name
		return nil
	})
	if err != nil {
		err = e.classify(ctx, err)
		e.record(span, "admit", c.RoomID(), err)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("reservation.id", int64(admitted.ID())))
	e.logger.Info("reservation admitted",
		"reservation_id", admitted.ID(),
		"room_id", admitted.RoomID(),
		"slot", admitted.Slot().String())

	e.hook.Admitted(ctx, reservation.NewAdmittedEvent(admitted, roomName, e.clock.Now()))
	return admitted.ID(), nil
}

// ReAdmit moves reservation id to the candidate's slot, checking only the other
// reservations of the room. The candidate must target the reservation's own room.
// On any failure the stored reservation is left as it was.
func (e *Engine) ReAdmit(ctx context.Context, id reservation.ID, c validation.Candidate) error {
	ctx, span := e.tracer.Start(ctx, "admission.ReAdmit", trace.WithAttributes(
		attribute.Int64("reservation.id", int64(id)),
		attribute.Int64("room.id", int64(c.RoomID())),
		attribute.String("reservation.slot", c.Slot().String()),
	))
	defer span.End()

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	return e.reAdmit(ctx, span, "re-admit", id, c.RoomID(), func(context.Context, *reservation.Reservation, shared.RoomSnapshot) (validation.Candidate, error) {
		return c, nil
	})
}

// Amendment derives the new state of a reservation from its current state. It runs under
// the room lock, so current is the latest committed version.
type Amendment func(ctx context.Context, current *reservation.Reservation, rm shared.RoomSnapshot) (validation.Candidate, error)

// Amend is ReAdmit with the candidate built from the locked reservation. Concurrent
// amendments of one reservation apply one after the other, each on top of the last.
// An error from amend is returned unchanged and nothing is written.
func (e *Engine) Amend(ctx context.Context, id reservation.ID, amend Amendment) error {
	ctx, span := e.tracer.Start(ctx, "admission.Amend", trace.WithAttributes(
		attribute.Int64("reservation.id", int64(id)),
	))
	defer span.End()

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	snap, err := e.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			err = errs.Mark(err, errs.ErrReservationNotFound)
		}
		err = e.classify(ctx, err)
		e.record(span, "amend", 0, err)
		return err
	}
	span.SetAttributes(attribute.Int64("room.id", int64(snap.RoomID)))

	err = e.reAdmit(ctx, span, "amend", id, snap.RoomID, amend)
	var verr *validation.Error
	if errs.Is(err, errs.ErrRoomNotFound) && !errs.As(err, &verr) {
		// The room can only vanish after its last reservation did.
		err = errs.Mark(err, errs.ErrReservationNotFound)
	}
	return err
}

// amendRejected carries an Amendment's own error through the unit of work untouched.
type amendRejected struct {
	err error
}

func (a *amendRejected) Error() string { return a.err.Error() }
func (a *amendRejected) Unwrap() error { return a.err }

func (e *Engine) reAdmit(ctx context.Context, span trace.Span, op string, id reservation.ID, roomID room.ID, amend Amendment) error {
	var slot reservation.Slot
	err := e.uow.WithinRoom(ctx, roomID, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reservations().LoadRoomReservations(ctx, roomID)
		if err != nil {
			return err
		}

		current := find(existing, id)
		if current == nil {
			return errs.Wrapf(errs.ErrReservationNotFound, "reservation %d in room %d", id, roomID)
		}

		c, err := amend(ctx, current.Clone(), tx.Room())
		if err != nil {
			return &amendRejected{err: err}
		}
		if c.RoomID() != roomID {
			return errs.Wrapf(errs.ErrReservationNotFound, "reservation %d in room %d", id, c.RoomID())
		}

		next := current.Clone()
		next.Reschedule(c.ReserverName(), c.Slot(), c.Notes(), e.clock.Now())
		if clash := firstConflict(next, existing); clash != nil {
			return &ConflictError{ReservationID: clash.ID()}
		}

		slot = next.Slot()
		return tx.Reservations().Replace(ctx, next)
	})
	if err != nil {
		var rejected *amendRejected
		if errs.As(err, &rejected) {
			e.logger.Debug("amendment rejected", "op", op, "reservation_id", id, "error", rejected.err)
			return rejected.err
		}
		err = e.classify(ctx, err)
		e.record(span, op, roomID, err)
		return err
	}

	e.logger.Info("reservation re-admitted",
		"reservation_id", id,
		"room_id", roomID,
		"slot", slot.String())
	return nil
}

// Withdraw removes reservation id. Removal cannot break any invariant, so nothing is
// re-validated.
func (e *Engine) Withdraw(ctx context.Context, id reservation.ID) error {
	ctx, span := e.tracer.Start(ctx, "admission.Withdraw", trace.WithAttributes(
		attribute.Int64("reservation.id", int64(id)),
	))
	defer span.End()

	ctx, cancel := e.bounded(ctx)
	defer cancel()

	snap, err := e.uow.CommandReads().ReservationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			err = errs.Mark(err, errs.ErrReservationNotFound)
		}
		err = e.classify(ctx, err)
		e.record(span, "withdraw", 0, err)
		return err
	}

	err = e.uow.WithinRoom(ctx, snap.RoomID, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, id)
	})
	if err != nil {
		if errs.Is(err, errs.ErrRoomNotFound) {
			// The room can only vanish after its last reservation did.
			err = errs.Mark(err, errs.ErrReservationNotFound)
		}
		err = e.classify(ctx, err)
		e.record(span, "withdraw", snap.RoomID, err)
		return err
	}

	e.logger.Info("reservation withdrawn", "reservation_id", id, "room_id", snap.RoomID)
	return nil
}

func (e *Engine) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// classify maps whatever the unit of work returned onto the engine's outcomes. Conflicts
// and not-found results pass through; everything else is a store failure the caller may retry.
func (e *Engine) classify(ctx context.Context, err error) error {
	if _, ok := ConflictingID(err); ok {
		return err
	}
	if errs.Is(err, errs.ErrRoomNotFound) || errs.Is(err, errs.ErrReservationNotFound) {
		return err
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrReservationNotFound)
	case infra.IsKind(err, infra.KindConflict):
		e.logger.Warn("overlap rejected by storage constraint", "error", err)
		return &ConflictError{}
	case errs.Is(err, context.DeadlineExceeded) || errs.Is(err, context.Canceled) || ctx.Err() != nil:
		return errs.Mark(errs.Wrap(err, "admission did not complete in time"), errs.ErrTimeout)
	default:
		return errs.Mark(errs.Wrap(err, "unit of work failed"), errs.ErrStoreUnavailable)
	}
}

func (e *Engine) record(span trace.Span, op string, roomID room.ID, err error) {
	if id, ok := ConflictingID(err); ok {
		span.SetAttributes(attribute.Int64("conflict.reservation_id", int64(id)))
		e.logger.Debug("reservation conflict", "op", op, "room_id", roomID, "conflicting_id", id)
		return
	}
	span.RecordError(err)
	switch {
	case errs.Is(err, errs.ErrStoreUnavailable), errs.Is(err, errs.ErrTimeout):
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("admission failed", "op", op, "room_id", roomID, "error", err)
	default:
		e.logger.Debug("admission rejected", "op", op, "room_id", roomID, "error", err)
	}
}

// firstConflict scans in (date, start) order and returns the earliest overlapping reservation.
func firstConflict(candidate *reservation.Reservation, existing []*reservation.Reservation) *reservation.Reservation {
	for _, r := range existing {
		if candidate.ConflictsWith(r) {
			return r
		}
	}
	return nil
}

func find(existing []*reservation.Reservation, id reservation.ID) *reservation.Reservation {
	for _, r := range existing {
		if r.ID() == id {
			return r
		}
	}
	return nil
}
