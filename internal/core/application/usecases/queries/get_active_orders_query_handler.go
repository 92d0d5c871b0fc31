package queries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns active orders oldest first. Terminal statuses come from the flows
// themselves, so an order is excluded only when it sits on the last step of its own flow.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]ActiveOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal, args, err := terminalStepsClause()
	if err != nil {
		return nil, err
	}
	sqlText := `
		SELECT
			id,
			customer_name,
			delivery_method,
			status,
			total,
			created_at
		FROM orders
		WHERE NOT (` + terminal + `)`
	if status, ok := query.Status(); ok {
		sqlText += ` AND status = ?`
		args = append(args, status.String())
	}
	sqlText += `
		ORDER BY created_at, id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ActiveOrderView, 0)
	for rows.Next() {
		var (
			view           ActiveOrderView
			id             uuid.UUID
			method, status string
			total          decimal.Decimal
			createdAt      time.Time
		)
		if err = rows.Scan(&id, &view.CustomerName, &method, &status, &total, &createdAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFrom(id); err != nil {
			return nil, err
		}
		if view.DeliveryMethod, view.Status, err = parseWorkflow(method, status); err != nil {
			return nil, fmt.Errorf("order %s: %w", id, err)
		}
		if view.Next, err = nextStatus(view.DeliveryMethod, view.Status); err != nil {
			return nil, fmt.Errorf("order %s: %w", id, err)
		}
		if view.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		view.CreatedAt = createdAt
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// terminalStepsClause renders "(delivery_method = ? AND status = ?) OR ..." for the last
// step of every flow.
func terminalStepsClause() (string, []any, error) {
	methods := []order.DeliveryMethod{order.Standard, order.Collection}
	parts := make([]string, 0, len(methods))
	args := make([]any, 0, 2*len(methods))
	for _, method := range methods {
		flow, err := order.FlowFor(method)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, "(delivery_method = ? AND status = ?)")
		args = append(args, method.String(), flow.Terminal().String())
	}
	return strings.Join(parts, " OR "), args, nil
}

func nextStatus(method order.DeliveryMethod, status order.Status) (order.Status, error) {
	flow, err := order.FlowFor(method)
	if err != nil {
		return order.Unknown, err
	}
	i, err := flow.IndexOf(status)
	if err != nil {
		return order.Unknown, err
	}
	next, _ := flow.Next(i)
	return next, nil
}
