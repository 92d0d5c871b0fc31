package commands

import (
	"context"
	"errors"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/pkg/errs"
)

// CreateOrderCommandHandler builds the order aggregate from a checkout and stores it as pending.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the whole order before opening a transaction, so a rejected checkout never
// touches the database.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := buildOrder(cmd)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	customer, customerErr := order.NewCustomer(cmd.CustomerName(), cmd.CustomerEmail())

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	errList := []error{customerErr}
	for _, line := range lines {
		price, err := kernel.NewMoney(line.Price)
		if err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("price", err))
			continue
		}
		item, err := order.NewItem(line.Title, line.Quantity, price)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}

	deliveryCost, err := kernel.NewMoney(cmd.DeliveryCost())
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("deliveryCost", err))
	}
	if err = errors.Join(errList...); err != nil {
		return nil, err
	}

	return order.NewOrder(cmd.OrderID(), customer, cmd.DeliveryMethod(), items, deliveryCost)
}
