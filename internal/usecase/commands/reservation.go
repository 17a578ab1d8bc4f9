package commands

import (
	"context"

	"room-booking/internal/domain/reservation"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/usecase/admission"
	"room-booking/internal/usecase/shared"
	"room-booking/internal/usecase/validation"
)

// Admitter is the admission engine as seen by the command side.
type Admitter interface {
	Admit(ctx context.Context, c validation.Candidate) (reservation.ID, error)
	Amend(ctx context.Context, id reservation.ID, amend admission.Amendment) error
	Withdraw(ctx context.Context, id reservation.ID) error
}

type Validator interface {
	Validate(ctx context.Context, in validation.Input) (validation.Candidate, error)
	ValidateInRoom(ctx context.Context, rm shared.RoomSnapshot, in validation.Input) (validation.Candidate, error)
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (reservation.ID, error)
	Update(ctx context.Context, id reservation.ID, req reqdto.UpdateReservationRequest) error
	Delete(ctx context.Context, id reservation.ID) error
}

type reservationCommandsImpl struct {
	validator Validator
	admitter  Admitter
}

func NewReservationCommands(validator Validator, admitter Admitter) ReservationCommands {
	return &reservationCommandsImpl{
		validator: validator,
		admitter:  admitter,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (reservation.ID, error) {
	in, err := req.ToInput()
	if err != nil {
		return 0, err
	}

	candidate, err := r.validator.Validate(ctx, in)
	if err != nil {
		return 0, err
	}

	return r.admitter.Admit(ctx, candidate)
}

// Update merges req over the reservation as it stands under the room lock, so a
// concurrent update of the same reservation is never overwritten with stale fields.
func (r *reservationCommandsImpl) Update(ctx context.Context, id reservation.ID, req reqdto.UpdateReservationRequest) error {
	return r.admitter.Amend(ctx, id, func(ctx context.Context, current *reservation.Reservation, rm shared.RoomSnapshot) (validation.Candidate, error) {
		in, err := req.ToInput(current)
		if err != nil {
			return validation.Candidate{}, err
		}
		return r.validator.ValidateInRoom(ctx, rm, in)
	})
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id reservation.ID) error {
	return r.admitter.Withdraw(ctx, id)
}
