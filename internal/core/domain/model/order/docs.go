// Package order models a customer order and the status workflow it moves through.
//
// An order is placed as Pending and then advanced one step at a time along the flow
// fixed by its delivery method:
//
//	standard:   pending -> processing -> dispatched -> delivered
//	collection: pending -> processing -> collected
//
// Only the immediate next status may be requested. Jumps, backward moves and statuses
// from the other flow fail with ErrIllegalTransition before anything is persisted, and
// re-requesting the current status is accepted as a no-op. The only auxiliary input is a
// tracking number, recorded when an order is dispatched.
//
// Stored data that does not fit these rules (an unknown delivery method, or a status that
// is not part of the order's flow) is reported with ErrInvalidDeliveryMethod and
// ErrStatusNotInFlow instead of being coerced to a default.
package order
