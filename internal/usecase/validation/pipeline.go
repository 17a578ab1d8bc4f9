package validation

import (
	"context"
	"strings"
	"unicode/utf8"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/usecase/shared"
)

// RoomLookup resolves a room id. A missing room is reported as a not-found repository error.
type RoomLookup interface {
	RoomByID(ctx context.Context, id room.ID) (*shared.RoomSnapshot, error)
}

// Input is a reservation proposal as received from the boundary.
type Input struct {
	RoomID       room.ID
	ReserverName string
	Slot         reservation.Slot
	Notes        *string
}

// Candidate is a proposal that passed every rule. It can only be produced by Pipeline.Validate.
type Candidate struct {
	room         shared.RoomSnapshot
	reserverName string
	slot         reservation.Slot
	notes        *string
}

func (c Candidate) Room() shared.RoomSnapshot { return c.room }
func (c Candidate) RoomID() room.ID           { return c.room.ID }
func (c Candidate) ReserverName() string      { return c.reserverName }
func (c Candidate) Slot() reservation.Slot    { return c.slot }
func (c Candidate) Notes() *string            { return c.notes }

type rule func(ctx context.Context, p *Pipeline, in *Input, c *Candidate) error

// Pipeline runs a fixed, ordered list of rules and stops at the first failure. The room
// check always runs first.
// Overlap is not checked here; that needs the room lock held by the admission engine.
type Pipeline struct {
	rooms RoomLookup
	clock clock.Clock
	rules []rule
}

func NewPipeline(rooms RoomLookup, clk clock.Clock) *Pipeline {
	return &Pipeline{
		rooms: rooms,
		clock: clk,
		rules: []rule{
			checkReserverName,
			checkNotes,
			checkOrdering,
			checkNotInPast,
		},
	}
}

// Validate returns a Candidate, a *Error naming the failed rule, or a store error from the
// room lookup.
func (p *Pipeline) Validate(ctx context.Context, in Input) (Candidate, error) {
	var c Candidate
	if err := checkRoomExists(ctx, p, &in, &c); err != nil {
		return Candidate{}, err
	}
	return p.run(ctx, in, c)
}

// ValidateInRoom runs the same rules against a room the caller already holds, typically
// the room locked by a unit of work. The input must target that room.
func (p *Pipeline) ValidateInRoom(ctx context.Context, rm shared.RoomSnapshot, in Input) (Candidate, error) {
	if in.RoomID != rm.ID {
		return Candidate{}, newError(KindRoomNotFound, FieldRoomID, "room %d is not room %d", in.RoomID, rm.ID)
	}
	return p.run(ctx, in, Candidate{room: rm})
}

func (p *Pipeline) run(ctx context.Context, in Input, c Candidate) (Candidate, error) {
	for _, r := range p.rules {
		if err := r(ctx, p, &in, &c); err != nil {
			return Candidate{}, err
		}
	}
	return c, nil
}

func checkRoomExists(ctx context.Context, p *Pipeline, in *Input, c *Candidate) error {
	snap, err := p.rooms.RoomByID(ctx, in.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return newError(KindRoomNotFound, FieldRoomID, "room %d does not exist", in.RoomID)
		}
		return errs.Mark(errs.Wrap(err, "room lookup"), errs.ErrStoreUnavailable)
	}
	c.room = *snap
	return nil
}

func checkReserverName(_ context.Context, _ *Pipeline, in *Input, c *Candidate) error {
	name := strings.TrimSpace(in.ReserverName)
	if name == "" {
		return newError(KindMissingField, FieldReserverName, "reserver name is required")
	}
	if utf8.RuneCountInString(name) > reservation.MaxReserverNameLength {
		return newError(KindFieldTooLong, FieldReserverName, "must be at most %d characters", reservation.MaxReserverNameLength)
	}
	c.reserverName = name
	return nil
}

func checkNotes(_ context.Context, _ *Pipeline, in *Input, c *Candidate) error {
	if in.Notes == nil {
		c.notes = nil
		return nil
	}
	if utf8.RuneCountInString(*in.Notes) > reservation.MaxNotesLength {
		return newError(KindFieldTooLong, FieldNotes, "must be at most %d characters", reservation.MaxNotesLength)
	}
	notes := *in.Notes
	c.notes = &notes
	return nil
}

func checkOrdering(_ context.Context, _ *Pipeline, in *Input, c *Candidate) error {
	if !reservation.IsOrdered(in.Slot.Start, in.Slot.End) {
		return newError(KindInvalidInterval, FieldEndTime, "end time %s must be after start time %s", in.Slot.End, in.Slot.Start)
	}
	c.slot = in.Slot
	return nil
}

func checkNotInPast(_ context.Context, p *Pipeline, in *Input, _ *Candidate) error {
	now := p.clock.Now()
	if !reservation.IsPast(in.Slot.Date, in.Slot.Start, now) {
		return nil
	}
	// A past calendar day is the date's fault; today with an elapsed start is the time's.
	if in.Slot.Date.Before(reservation.DateOf(now)) {
		return newError(KindReservationInPast, FieldDate, "date %s is in the past", in.Slot.Date)
	}
	return newError(KindReservationInPast, FieldStartTime, "start time %s on %s has already passed", in.Slot.Start, in.Slot.Date)
}
