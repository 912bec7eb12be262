package rdseed

import (
	"errors"
	"fmt"
)

// Cause classifies an Error.
type Cause int

const (
	// CauseUnsupportedCPU means the processor lacks RDSEED or the smoke call
	// never succeeded. Callers can fall back to a software generator.
	CauseUnsupportedCPU Cause = iota + 1
	// CauseLibraryUnavailable means the binding could not be loaded. This is
	// a broken installation, not missing hardware.
	CauseLibraryUnavailable
	// CauseRetriesExhausted means the hardware did not yield a word within
	// the retry ceiling.
	CauseRetriesExhausted
	// CauseInvalidRequest means the requested size was negative or too large.
	CauseInvalidRequest
)

func (c Cause) String() string {
	switch c {
	case CauseUnsupportedCPU:
		return "unsupported cpu"
	case CauseLibraryUnavailable:
		return "library unavailable"
	case CauseRetriesExhausted:
		return "retries exhausted"
	case CauseInvalidRequest:
		return "invalid request"
	}
	return fmt.Sprintf("cause(%d)", int(c))
}

// Error is the single error type returned by this package.
type Error struct {
	Cause Cause
	Msg   string
	// Err is the underlying error, if any (e.g. the dlopen failure).
	Err error
}

// Sentinels for errors.Is. They match any *Error with the same Cause.
var (
	ErrUnsupportedCPU     = &Error{Cause: CauseUnsupportedCPU}
	ErrLibraryUnavailable = &Error{Cause: CauseLibraryUnavailable}
	ErrRetriesExhausted   = &Error{Cause: CauseRetriesExhausted}
	ErrInvalidRequest     = &Error{Cause: CauseInvalidRequest}
)

func newError(cause Cause, err error, format string, args ...any) *Error {
	return &Error{Cause: cause, Msg: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	msg := "rdseed: " + e.Cause.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Cause == e.Cause
}

// CauseOf returns the Cause of the first *Error in err's chain, or 0.
func CauseOf(err error) Cause {
	var e *Error
	if errors.As(err, &e) {
		return e.Cause
	}
	return 0
}
