// Package queries contains the read side: handlers query the database directly and return
// flat views, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/core/domain/services"
	"wreaths/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

type OrderItemView struct {
	Title     string
	Quantity  int
	Price     kernel.Money
	LineTotal kernel.Money
}

// GetOrderQueryResponse is an order with its lines and its position in the status flow.
type GetOrderQueryResponse struct {
	ID             kernel.UUID
	CustomerName   string
	CustomerEmail  string
	DeliveryMethod order.DeliveryMethod
	Status         order.Status
	Items          []OrderItemView
	Subtotal       kernel.Money
	DeliveryCost   kernel.Money
	Total          kernel.Money
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Progress       services.Progress
}
