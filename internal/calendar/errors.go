package calendar

import "errors"

// Sentinel errors for rejected input. Use errors.Is against these.
var (
	// ErrInvalidCalendar is returned for an unknown calendar id.
	ErrInvalidCalendar = errors.New("invalid calendar")

	// ErrOutOfRange is returned when an argument exceeds a documented bound.
	ErrOutOfRange = errors.New("argument out of range")

	// ErrInvalidDate is returned when a facade operation needs a real date
	// and the converter signalled 0.
	ErrInvalidDate = errors.New("invalid date")
)

// ArgumentError describes which argument was rejected and why.
type ArgumentError struct {
	Arg    string // argument name, e.g. "month"
	Reason string // e.g. "must be between 1 and 2147483646"
	Err    error  // one of the sentinel errors above
}

func newArgumentError(arg, reason string, err error) *ArgumentError {
	return &ArgumentError{Arg: arg, Reason: reason, Err: err}
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return e.Reason
	}
	return e.Arg + " " + e.Reason
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
