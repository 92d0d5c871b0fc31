package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned when a status other than the single next step is requested.
var ErrIllegalTransition = errors.New("illegal transition")

// IllegalTransitionError carries the rejected move.
type IllegalTransitionError struct {
	From Status
	To   Status
	// Expected is the legal next status, Unknown when From is terminal.
	Expected Status
}

func (e *IllegalTransitionError) Error() string {
	if e.Expected == Unknown {
		return fmt.Sprintf("%s: %s -> %s, order is already %s", ErrIllegalTransition, e.From, e.To, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s, next status is %s", ErrIllegalTransition, e.From, e.To, e.Expected)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
