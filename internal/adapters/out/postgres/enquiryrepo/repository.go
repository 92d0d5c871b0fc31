package enquiryrepo

import (
	"context"
	"errors"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormEnquiryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormEnquiryRepository(db *gorm.DB, tracker aggregateTracker) *GormEnquiryRepository {
	return &GormEnquiryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormEnquiryRepository) Add(ctx context.Context, aggregate *bespoke.Enquiry) error {
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

// Update writes the status and responded_at; the submitted form never changes.
func (r *GormEnquiryRepository) Update(ctx context.Context, aggregate *bespoke.Enquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EnquiryDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"responded_at": dto.RespondedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("enquiryId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormEnquiryRepository) Get(ctx context.Context, id kernel.UUID) (*bespoke.Enquiry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EnquiryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enquiryId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
