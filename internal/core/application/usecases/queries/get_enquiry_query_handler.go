package queries

import (
	"context"
	"database/sql"
	"errors"

	"wreaths/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetEnquiryQueryHandler struct {
	db *gorm.DB
}

func NewGetEnquiryQueryHandler(db *gorm.DB) GetEnquiryQueryHandler {
	return GetEnquiryQueryHandler{db: db}
}

func (h GetEnquiryQueryHandler) Handle(ctx context.Context, query GetEnquiryQuery) (EnquiryView, error) {
	if err := query.Validate(); err != nil {
		return EnquiryView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+enquiryColumns+`
		FROM enquiries
		WHERE id = ?
	`, query.EnquiryID().Value()).Row()

	view, err := scanEnquiry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EnquiryView{}, errs.NewObjectNotFoundError("enquiryId", query.EnquiryID().String())
		}
		return EnquiryView{}, err
	}
	return view, nil
}
