package queries

import (
	"errors"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/guard"
)

var ErrGetEnquiryQueryIsNotConstructed = errors.New("GetEnquiryQuery must be created via NewGetEnquiryQuery constructor")

type GetEnquiryQuery struct {
	enquiryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetEnquiryQuery(enquiryID kernel.UUID) (GetEnquiryQuery, error) {
	if err := enquiryID.Validate(); err != nil {
		return GetEnquiryQuery{}, err
	}
	return GetEnquiryQuery{enquiryID: enquiryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEnquiryQuery) Validate() error {
	return q.guard.Validate(ErrGetEnquiryQueryIsNotConstructed)
}

func (q GetEnquiryQuery) EnquiryID() kernel.UUID {
	return q.enquiryID
}
