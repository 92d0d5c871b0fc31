package commands

import (
	"errors"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand asks to move an order to its next status.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand parses the requested status name. trackingNumber may be empty.
func NewAdvanceOrderStatusCommand(orderID kernel.UUID, target string, trackingNumber string) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c AdvanceOrderStatusCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target string) error {
	status, err := order.ParseStatus(target)
	if err != nil {
		return err
	}
	c.target = status
	return nil
}
