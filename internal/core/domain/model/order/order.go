package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/errs"
)

// MaxTrackingNumberLength bounds what a carrier reference may look like.
const MaxTrackingNumberLength = 64

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTotalMismatch is returned by RestoreOrder when stored amounts do not add up.
	ErrTotalMismatch = errors.New("total does not equal subtotal plus delivery cost")
)

// Order is the aggregate root for a placed order.
//
// Invariants:
//   - the status always belongs to the flow of the delivery method
//   - items are non-empty and subtotal is the sum of their line totals
//   - total equals subtotal plus delivery cost, and collection orders pay no delivery
//   - a tracking number exists only once a standard order has reached dispatched
type Order struct {
	id             kernel.UUID
	customer       Customer
	deliveryMethod DeliveryMethod
	flow           Flow
	status         Status
	items          []Item
	subtotal       kernel.Money
	deliveryCost   kernel.Money
	total          kernel.Money
	trackingNumber string
	createdAt      time.Time
	updatedAt      time.Time

	isConstructed bool
}

// NewOrder places an order at checkout. It starts as Pending; subtotal and total are computed
// from the items and the delivery cost.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	method DeliveryMethod,
	items []Item,
	deliveryCost kernel.Money,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setDeliveryMethod(method),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	if err := o.setDeliveryCost(deliveryCost); err != nil {
		return nil, err
	}

	o.subtotal = subtotalOf(o.items)
	o.total = o.subtotal.Add(o.deliveryCost)
	return o, nil
}

// Snapshot is the stored form of an order handed to RestoreOrder.
type Snapshot struct {
	ID             kernel.UUID
	Customer       Customer
	DeliveryMethod DeliveryMethod
	Status         Status
	Items          []Item
	Subtotal       kernel.Money
	DeliveryCost   kernel.Money
	Total          kernel.Money
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreOrder rebuilds an order from storage. Every invariant is rechecked; a status outside the
// delivery method's flow fails with ErrStatusNotInFlow, inconsistent amounts with ErrTotalMismatch.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.Customer),
		o.setDeliveryMethod(s.DeliveryMethod),
		o.setItems(s.Items),
	); err != nil {
		return nil, err
	}
	if err := o.setDeliveryCost(s.DeliveryCost); err != nil {
		return nil, err
	}
	if _, err := o.flow.IndexOf(s.Status); err != nil {
		return nil, err
	}
	o.status = s.Status

	subtotal := subtotalOf(o.items)
	if err := errors.Join(s.Subtotal.Validate(), s.Total.Validate()); err != nil {
		return nil, err
	}
	if !s.Subtotal.IsEqual(subtotal) {
		return nil, fmt.Errorf("%w: subtotal %s but items sum to %s", ErrTotalMismatch, s.Subtotal, subtotal)
	}
	if !s.Total.IsEqual(subtotal.Add(o.deliveryCost)) {
		return nil, fmt.Errorf("%w: %s != %s + %s", ErrTotalMismatch, s.Total, subtotal, o.deliveryCost)
	}
	o.subtotal = s.Subtotal
	o.total = s.Total

	if err := o.restoreTrackingNumber(s.TrackingNumber); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// Flow returns the status flow of the order's delivery method.
func (o *Order) Flow() Flow {
	return o.flow
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) DeliveryCost() kernel.Money {
	return o.deliveryCost
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// TrackingNumber is empty until the order is dispatched with one.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CurrentIndex is the position of the status in the order's flow.
func (o *Order) CurrentIndex() int {
	i, _ := o.flow.IndexOf(o.status)
	return i
}

// NextStatus returns the single status the order may be advanced to, or false once it is terminal.
func (o *Order) NextStatus() (Status, bool) {
	return o.flow.Next(o.CurrentIndex())
}

// IsTerminal reports whether the order has reached the last step of its flow.
func (o *Order) IsTerminal() bool {
	_, ok := o.NextStatus()
	return !ok
}

// Advance moves the order to target, which must be the next status of its flow.
//
// Requesting the current status again is a no-op and reports changed == false. Any other target
// fails with *IllegalTransitionError and leaves the order untouched. trackingNumber is optional;
// it is trimmed and recorded only when target is Dispatched, and supplying one for another target
// is rejected.
func (o *Order) Advance(target Status, trackingNumber string) (changed bool, err error) {
	if err = o.Validate(); err != nil {
		return false, err
	}
	if err = target.Validate(); err != nil {
		return false, err
	}
	if target == o.status {
		return false, nil
	}

	next, ok := o.NextStatus()
	if !ok || target != next {
		return false, &IllegalTransitionError{From: o.status, To: target, Expected: next}
	}

	trackingNumber = strings.TrimSpace(trackingNumber)
	if err = validateTrackingNumber(target, trackingNumber); err != nil {
		return false, err
	}

	o.status = target
	if RequiresTrackingNumber(target) {
		o.trackingNumber = trackingNumber
	}
	o.updatedAt = time.Now().UTC()
	return true, nil
}

func validateTrackingNumber(target Status, trackingNumber string) error {
	if trackingNumber == "" {
		return nil
	}
	if !RequiresTrackingNumber(target) {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("a tracking number is only recorded when dispatching, not when moving to %s", target),
		)
	}
	if len(trackingNumber) > MaxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeError("trackingNumber length", len(trackingNumber), 1, MaxTrackingNumberLength)
	}
	return nil
}

func (o *Order) restoreTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil
	}
	dispatchedAt, err := o.flow.IndexOf(Dispatched)
	if err != nil || o.CurrentIndex() < dispatchedAt {
		return errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%s %s order cannot carry a tracking number", o.status, o.deliveryMethod),
		)
	}
	if len(trackingNumber) > MaxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeError("trackingNumber length", len(trackingNumber), 1, MaxTrackingNumberLength)
	}
	o.trackingNumber = trackingNumber
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(c Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

func (o *Order) setDeliveryMethod(method DeliveryMethod) error {
	flow, err := FlowFor(method)
	if err != nil {
		return err
	}
	o.deliveryMethod = method
	o.flow = flow
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

// setDeliveryCost must run after setDeliveryMethod.
func (o *Order) setDeliveryCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryCost", err)
	}
	if o.deliveryMethod == Collection && !cost.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryCost",
			fmt.Errorf("collection orders are not charged for delivery, got %s", cost),
		)
	}
	o.deliveryCost = cost
	return nil
}

func subtotalOf(items []Item) kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}
