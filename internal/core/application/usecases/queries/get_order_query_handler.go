package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/core/domain/services"
	"wreaths/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db      *gorm.DB
	tracker services.ProgressTracker
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, tracker: services.NewProgressTracker()}
}

// Handle returns errs.ObjectNotFoundError for an unknown ID. A stored method or status that
// does not fit the workflow fails with order.ErrInvalidDeliveryMethod or order.ErrStatusNotInFlow.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		resp                          GetOrderQueryResponse
		method, status                string
		subtotal, deliveryCost, total decimal.Decimal
		trackingNumber                sql.NullString
		createdAt, updatedAt          time.Time
	)
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_name,
			customer_email,
			delivery_method,
			status,
			subtotal,
			delivery_cost,
			total,
			tracking_number,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Value()).Row()
	err := row.Scan(
		&resp.CustomerName,
		&resp.CustomerEmail,
		&method,
		&status,
		&subtotal,
		&deliveryCost,
		&total,
		&trackingNumber,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp.ID = query.OrderID()
	resp.TrackingNumber = trackingNumber.String
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	if resp.DeliveryMethod, resp.Status, err = parseWorkflow(method, status); err != nil {
		return GetOrderQueryResponse{}, fmt.Errorf("order %s: %w", resp.ID, err)
	}
	if resp.Subtotal, resp.DeliveryCost, resp.Total, err = amounts(subtotal, deliveryCost, total); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Items, err = h.items(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = restorable(resp); err != nil {
		return GetOrderQueryResponse{}, fmt.Errorf("order %s: %w", resp.ID, err)
	}
	if resp.Progress, err = h.tracker.TrackStatus(resp.DeliveryMethod, resp.Status); err != nil {
		return GetOrderQueryResponse{}, fmt.Errorf("order %s: %w", resp.ID, err)
	}
	return resp, nil
}

// restorable runs the view through order.RestoreOrder, so a row the advance command would
// reject (amounts that do not add up, a misplaced tracking number) is not shown either.
func restorable(resp GetOrderQueryResponse) error {
	customer, err := order.NewCustomer(resp.CustomerName, resp.CustomerEmail)
	if err != nil {
		return err
	}
	items := make([]order.Item, len(resp.Items))
	for i, view := range resp.Items {
		if items[i], err = order.NewItem(view.Title, view.Quantity, view.Price); err != nil {
			return err
		}
	}
	_, err = order.RestoreOrder(order.Snapshot{
		ID:             resp.ID,
		Customer:       customer,
		DeliveryMethod: resp.DeliveryMethod,
		Status:         resp.Status,
		Items:          items,
		Subtotal:       resp.Subtotal,
		DeliveryCost:   resp.DeliveryCost,
		Total:          resp.Total,
		TrackingNumber: resp.TrackingNumber,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	})
	return err
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			title,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item  OrderItemView
			price decimal.Decimal
		)
		if err = rows.Scan(&item.Title, &item.Quantity, &price); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		item.LineTotal = item.Price.Times(item.Quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// parseWorkflow reads stored method and status names. Both are reported with the order
// package sentinels so callers can tell bad data from bad input.
func parseWorkflow(method, status string) (order.DeliveryMethod, order.Status, error) {
	m, err := order.ParseDeliveryMethod(method)
	if err != nil {
		return order.DeliveryUnknown, order.Unknown, err
	}
	s, err := order.ParseStatus(status)
	if err != nil {
		return order.DeliveryUnknown, order.Unknown, fmt.Errorf("%w: %w", order.ErrStatusNotInFlow, err)
	}
	return m, s, nil
}

func amounts(subtotal, deliveryCost, total decimal.Decimal) (kernel.Money, kernel.Money, kernel.Money, error) {
	x, errA := kernel.NewMoney(subtotal)
	y, errB := kernel.NewMoney(deliveryCost)
	z, errC := kernel.NewMoney(total)
	if err := errors.Join(errA, errB, errC); err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}
	return x, y, z, nil
}
