// Package guard holds small helpers that domain types embed to detect misuse.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tells a value built by its constructor apart from a zero value.
//
// Embed it in a value object and set it from the constructor only:
//
//	type Price struct {
//	    guard.ConstructorGuard
//	    amount decimal.Decimal
//	}
//
//	func NewPrice(amount decimal.Decimal) (Price, error) {
//	    return Price{ConstructorGuard: guard.NewConstructorGuard(), amount: amount}, nil
//	}
//
// A Price{} literal then fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
