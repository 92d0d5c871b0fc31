package ports

import (
	"context"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
)

// EnquiryRepository stores submitted bespoke enquiries.
type EnquiryRepository interface {
	Add(ctx context.Context, aggregate *bespoke.Enquiry) error
	Update(ctx context.Context, aggregate *bespoke.Enquiry) error
	Get(ctx context.Context, id kernel.UUID) (*bespoke.Enquiry, error)
}
