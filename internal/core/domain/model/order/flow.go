package order

import (
	"errors"
	"fmt"
	"slices"
)

// ErrStatusNotInFlow means a status does not belong to the flow of the order's delivery method.
var ErrStatusNotInFlow = errors.New("status not in flow")

// Flow is the fixed ordered sequence of statuses for one delivery method.
type Flow struct {
	method DeliveryMethod
	steps  []Status
}

func getFlows() map[DeliveryMethod][]Status {
	return map[DeliveryMethod][]Status{
		Standard:   {Pending, Processing, Dispatched, Delivered},
		Collection: {Pending, Processing, Collected},
	}
}

// FlowFor returns the flow of a delivery method. There is no fallback flow:
// an unrecognised method fails with ErrInvalidDeliveryMethod.
func FlowFor(method DeliveryMethod) (Flow, error) {
	steps, ok := getFlows()[method]
	if !ok {
		return Flow{}, fmt.Errorf("%w: %d", ErrInvalidDeliveryMethod, method)
	}
	return Flow{method: method, steps: steps}, nil
}

func (f Flow) Method() DeliveryMethod {
	return f.method
}

// Steps returns a copy of the statuses in order.
func (f Flow) Steps() []Status {
	return slices.Clone(f.steps)
}

func (f Flow) Len() int {
	return len(f.steps)
}

// IndexOf returns the position of status in the flow.
func (f Flow) IndexOf(status Status) (int, error) {
	if i := slices.Index(f.steps, status); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %s is not part of the %s flow", ErrStatusNotInFlow, status, f.method)
}

func (f Flow) Contains(status Status) bool {
	return slices.Contains(f.steps, status)
}

// Next returns the status after index, or false when index is the last step
// (or outside the flow altogether).
func (f Flow) Next(index int) (Status, bool) {
	if index < 0 || index+1 >= len(f.steps) {
		return Unknown, false
	}
	return f.steps[index+1], true
}

// Previous returns the status before index, or false for the first step.
func (f Flow) Previous(index int) (Status, bool) {
	if index < 1 || index >= len(f.steps) {
		return Unknown, false
	}
	return f.steps[index-1], true
}

// Terminal returns the final status of the flow.
func (f Flow) Terminal() Status {
	if len(f.steps) == 0 {
		return Unknown
	}
	return f.steps[len(f.steps)-1]
}

// RequiresTrackingNumber reports whether moving to next should prompt for a tracking number.
// The number itself stays optional.
func RequiresTrackingNumber(next Status) bool {
	return next == Dispatched
}
