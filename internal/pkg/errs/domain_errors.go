package errs

// Domain-specific sentinel errors shared by the validation pipeline, the admission engine
// and the handlers.
var (
	// Room errors
	ErrRoomNotFound = New("room not found")
	ErrRoomInUse    = New("room is referenced by reservations")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrReservationConflict = New("reservation conflict")

	// Validation errors
	ErrInvalidInterval    = New("end time must be after start time")
	ErrReservationInPast  = New("reservation cannot start in the past")
	ErrFieldTooLong       = New("field too long")
	ErrMissingField       = New("missing field")
	ErrInvalidTimeOfDay   = New("invalid time of day")
	ErrInvalidDate        = New("invalid date")
	ErrInvalidRoomDetails = New("invalid room details")

	// Operation errors
	ErrStoreUnavailable = New("store unavailable")
	ErrTimeout          = New("admission timed out")
)
