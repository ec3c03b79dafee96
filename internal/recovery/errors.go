package recovery

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProcedure = errors.New("unknown procedure")
	ErrInvalidDayValue  = errors.New("days post-op out of range")
)

type ErrorKind string

const (
	ErrorKindUnknownProcedure ErrorKind = "unknown_procedure"
	ErrorKindInvalidDayValue  ErrorKind = "invalid_day_value"
)

// Error reports a caller contract violation. Err is one of the package
// sentinels so errors.Is works through it.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func unknownProcedureError(id string) *Error {
	return &Error{
		Kind:    ErrorKindUnknownProcedure,
		Message: fmt.Sprintf("procedure %q", id),
		Err:     ErrUnknownProcedure,
	}
}

func invalidDayError(days int) *Error {
	return &Error{
		Kind:    ErrorKindInvalidDayValue,
		Message: fmt.Sprintf("day %d (want %d-%d)", days, MinDaysPostOp, MaxDaysPostOp),
		Err:     ErrInvalidDayValue,
	}
}
