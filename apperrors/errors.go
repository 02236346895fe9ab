package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure taxonomy. Controllers map these to HTTP
// status codes with errors.Is / errors.As.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyPaid   = errors.New("bill is already paid")
	ErrAlreadyBilled = errors.New("an order was already claimed by another bill")
	ErrUnavailable   = errors.New("menu item is currently unavailable")
	ErrNothingToBill = errors.New("no served orders found for this table")
)

// ValidationError reports malformed input: non-positive quantity, missing
// table number for a dine-in order, editing an order past its editable states.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InvalidTransitionError reports a status edge outside the declared set,
// naming both the current and the requested status.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

// NotFoundf wraps ErrNotFound with the offending entity's name and id.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
