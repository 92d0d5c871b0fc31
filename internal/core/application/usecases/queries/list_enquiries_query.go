package queries

import (
	"errors"
	"strings"
	"time"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/guard"
)

var ErrListEnquiriesQueryIsNotConstructed = errors.New(
	"ListEnquiriesQuery must be created via NewListEnquiriesQuery constructor",
)

type ListEnquiriesQuery struct {
	status    bespoke.EnquiryStatus
	hasStatus bool

	guard guard.ConstructorGuard
}

// NewListEnquiriesQuery takes an optional status name ("new" or "responded").
func NewListEnquiriesQuery(status string) (ListEnquiriesQuery, error) {
	q := ListEnquiriesQuery{guard: guard.NewConstructorGuard()}
	if status = strings.TrimSpace(status); status != "" {
		parsed, err := bespoke.ParseEnquiryStatus(status)
		if err != nil {
			return ListEnquiriesQuery{}, err
		}
		q.status, q.hasStatus = parsed, true
	}
	return q, nil
}

func (q ListEnquiriesQuery) Validate() error {
	return q.guard.Validate(ErrListEnquiriesQueryIsNotConstructed)
}

func (q ListEnquiriesQuery) Status() (bespoke.EnquiryStatus, bool) {
	return q.status, q.hasStatus
}

// EnquiryView is a submitted bespoke enquiry. EstimatedPrice is nil when the selection
// needed a quote.
type EnquiryView struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	ArrangementType string
	ColourTheme     string
	WreathBase      string
	Size            bespoke.Size
	Ribbon          bool
	Notes           string
	EstimatedPrice  *kernel.Money
	Status          bespoke.EnquiryStatus
	CreatedAt       time.Time
	RespondedAt     *time.Time
}
