package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/core/domain/model/order"
	"wreaths/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable part of an order: status, tracking number and updated_at.
// Lines and amounts are fixed at checkout.
//
// The row is only written while it still holds the status the order advanced from. If
// another transaction moved it first, Update returns *order.IllegalTransitionError built
// from the stored status and writes nothing.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	from := aggregate.Status()
	if previous, ok := aggregate.Flow().Previous(aggregate.CurrentIndex()); ok {
		from = previous
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, from.String()).
		Updates(map[string]any{
			"status":          dto.Status,
			"tracking_number": dto.TrackingNumber,
			"updated_at":      dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleUpdateError(ctx, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) staleUpdateError(ctx context.Context, aggregate *order.Order) error {
	var statuses []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Value()).
		Pluck("status", &statuses).Error
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	stored, err := order.ParseStatus(statuses[0])
	if err != nil {
		return fmt.Errorf("order %s: %w: %w", aggregate.ID(), order.ErrStatusNotInFlow, err)
	}
	transition := &order.IllegalTransitionError{From: stored, To: aggregate.Status()}
	if i, err := aggregate.Flow().IndexOf(stored); err == nil {
		transition.Expected, _ = aggregate.Flow().Next(i)
	}
	return transition
}

// Get loads the order and locks its row until the surrounding transaction ends, so
// concurrent status changes of one order run one after another.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
