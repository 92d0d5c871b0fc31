package queries

import (
	"errors"
	"strings"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists orders that have not reached the last step of their flow.
type GetActiveOrdersQuery struct {
	status    order.Status
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery takes an optional status name; an empty string lists every active order.
func NewGetActiveOrdersQuery(status string) (GetActiveOrdersQuery, error) {
	q := GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return GetActiveOrdersQuery{}, err
		}
		q.status, q.hasStatus = parsed, true
	}
	return q, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the filter, if any.
func (q GetActiveOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.hasStatus
}

type ActiveOrderView struct {
	ID             kernel.UUID
	CustomerName   string
	DeliveryMethod order.DeliveryMethod
	Status         order.Status
	Next           order.Status
	Total          kernel.Money
	CreatedAt      time.Time
}
