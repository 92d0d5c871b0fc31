package commands

import (
	"errors"
	"fmt"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/pkg/errs"
	"wreaths/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is a checkout line as received from the storefront.
type OrderLine struct {
	Title    string
	Quantity int
	Price    decimal.Decimal
}

// CreateOrderCommand places an order at checkout.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerName   string
	customerEmail  string
	deliveryMethod order.DeliveryMethod
	lines          []OrderLine
	deliveryCost   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks the shape of the request. Business rules (customer details, line
// validity, free delivery for collection) are enforced by the order aggregate in the handler.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName, customerEmail string,
	deliveryMethod string,
	lines []OrderLine,
	deliveryCost decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerName:  customerName,
		customerEmail: customerEmail,
		deliveryCost:  deliveryCost,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryMethod(deliveryMethod),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

func (c CreateOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

func (c CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

func (c CreateOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c CreateOrderCommand) DeliveryCost() decimal.Decimal {
	return c.deliveryCost
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMethod(method string) error {
	parsed, err := order.ParseDeliveryMethod(method)
	if err != nil {
		return err
	}
	c.deliveryMethod = parsed
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, line := range lines {
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", line.Quantity),
			)
		}
	}
	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
