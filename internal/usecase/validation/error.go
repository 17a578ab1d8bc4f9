package validation

import (
	"fmt"

	"room-booking/internal/pkg/errs"
)

type Kind string

const (
	KindRoomNotFound      Kind = "RoomNotFound"
	KindMissingField      Kind = "MissingField"
	KindFieldTooLong      Kind = "FieldTooLong"
	KindInvalidInterval   Kind = "InvalidInterval"
	KindReservationInPast Kind = "ReservationInPast"
)

// Field names as they appear on the wire.
const (
	FieldRoomID       = "roomId"
	FieldReserverName = "reserverName"
	FieldNotes        = "notes"
	FieldDate         = "date"
	FieldStartTime    = "startTime"
	FieldEndTime      = "endTime"
)

// Error names the rule that failed and the offending field.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

// Is lets errs.Is match a validation failure against the shared sentinels.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindRoomNotFound:
		return target == errs.ErrRoomNotFound
	case KindMissingField:
		return target == errs.ErrMissingField
	case KindFieldTooLong:
		return target == errs.ErrFieldTooLong
	case KindInvalidInterval:
		return target == errs.ErrInvalidInterval
	case KindReservationInPast:
		return target == errs.ErrReservationInPast
	}
	return false
}

func newError(kind Kind, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
