// Package ports defines the persistence contracts the application layer depends on.
package ports

import (
	"context"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates together with their lines.
type OrderRepository interface {
	// Add persists a newly placed order. Orders are never deleted.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change (and tracking number) of an existing order. It fails with
	// *order.IllegalTransitionError when the stored status is no longer the one the order left.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError. Stored data that breaks the
	// workflow invariants is returned as order.ErrInvalidDeliveryMethod / order.ErrStatusNotInFlow.
	// Inside a transaction the order stays locked until commit or rollback.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
