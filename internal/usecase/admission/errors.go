package admission

import (
	"fmt"

	"room-booking/internal/domain/reservation"
	"room-booking/internal/pkg/errs"
)

// ConflictError is a routine outcome: the proposed slot overlaps an admitted reservation.
// ReservationID is zero when the overlap was caught by the storage constraint and the
// holder is unknown.
type ConflictError struct {
	ReservationID reservation.ID
}

func (e *ConflictError) Error() string {
	if e.ReservationID == 0 {
		return "reservation conflict"
	}
	return fmt.Sprintf("reservation conflict with reservation %d", e.ReservationID)
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrReservationConflict
}

// ConflictingID extracts the holder of the slot from a conflict error.
func ConflictingID(err error) (reservation.ID, bool) {
	var ce *ConflictError
	if errs.As(err, &ce) {
		return ce.ReservationID, true
	}
	return 0, false
}
