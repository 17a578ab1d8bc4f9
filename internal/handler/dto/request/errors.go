package request

// FormatError reports a field that could not be parsed.
type FormatError struct {
	Field string
	Err   error
}

func (e *FormatError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
