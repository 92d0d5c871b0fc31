// Package orderrepo persists order aggregates in the orders and order_items tables.
package orderrepo

import (
	"fmt"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Status and delivery method are kept as their
// lowercase names.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName   string          `gorm:"not null"`
	CustomerEmail  string          `gorm:"not null"`
	DeliveryMethod string          `gorm:"type:varchar(16);not null"`
	Status         string          `gorm:"type:varchar(16);not null"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryCost   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TrackingNumber *string         `gorm:"type:varchar(64)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
	Items          []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line of an order; Position keeps checkout order.
type OrderItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"primaryKey"`
	Title    string          `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var trackingNumber *string
	if tn := o.TrackingNumber(); tn != "" {
		trackingNumber = &tn
	}

	items := o.Items()
	itemDTOs := make([]OrderItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = OrderItemDTO{
			OrderID:  o.ID().Value(),
			Position: i,
			Title:    item.Title(),
			Quantity: item.Quantity(),
			Price:    item.Price().Decimal(),
		}
	}

	return OrderDTO{
		ID:             o.ID().Value(),
		CustomerName:   o.Customer().Name(),
		CustomerEmail:  o.Customer().Email(),
		DeliveryMethod: o.DeliveryMethod().String(),
		Status:         o.Status().String(),
		Subtotal:       o.Subtotal().Decimal(),
		DeliveryCost:   o.DeliveryCost().Decimal(),
		Total:          o.Total().Decimal(),
		TrackingNumber: trackingNumber,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
		Items:          itemDTOs,
	}
}

// toDomain rebuilds the aggregate. Unknown method or status names are reported with the
// domain sentinels instead of being mapped to a default. Items must already be sorted by
// position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	method, err := order.ParseDeliveryMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w: %w", dto.ID, order.ErrStatusNotInFlow, err)
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, err := kernel.NewMoney(itemDTO.Price)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(itemDTO.Title, itemDTO.Quantity, price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	deliveryCost, err := kernel.NewMoney(dto.DeliveryCost)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	var trackingNumber string
	if dto.TrackingNumber != nil {
		trackingNumber = *dto.TrackingNumber
	}

	o, err := order.RestoreOrder(order.Snapshot{
		ID:             id,
		Customer:       customer,
		DeliveryMethod: method,
		Status:         status,
		Items:          items,
		Subtotal:       subtotal,
		DeliveryCost:   deliveryCost,
		Total:          total,
		TrackingNumber: trackingNumber,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", dto.ID, err)
	}
	return o, nil
}
