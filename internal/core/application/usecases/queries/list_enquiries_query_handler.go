package queries

import (
	"context"
	"database/sql"
	"fmt"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListEnquiriesQueryHandler struct {
	db *gorm.DB
}

func NewListEnquiriesQueryHandler(db *gorm.DB) ListEnquiriesQueryHandler {
	return ListEnquiriesQueryHandler{db: db}
}

// Handle returns enquiries newest first.
func (h ListEnquiriesQueryHandler) Handle(ctx context.Context, query ListEnquiriesQuery) ([]EnquiryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT ` + enquiryColumns + `
		FROM enquiries`
	var args []any
	if status, ok := query.Status(); ok {
		sqlText += `
		WHERE status = ?`
		args = append(args, status.String())
	}
	sqlText += `
		ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enquiries := make([]EnquiryView, 0)
	for rows.Next() {
		view, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return enquiries, nil
}

const enquiryColumns = `
			id,
			name,
			email,
			phone,
			arrangement_type,
			colour_theme,
			wreath_base,
			size,
			ribbon,
			notes,
			estimated_price,
			status,
			created_at,
			responded_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEnquiry(row rowScanner) (EnquiryView, error) {
	var (
		view        EnquiryView
		id          uuid.UUID
		size        string
		estimate    decimal.NullDecimal
		status      string
		respondedAt sql.NullTime
	)
	err := row.Scan(
		&id,
		&view.Name,
		&view.Email,
		&view.Phone,
		&view.ArrangementType,
		&view.ColourTheme,
		&view.WreathBase,
		&size,
		&view.Ribbon,
		&view.Notes,
		&estimate,
		&status,
		&view.CreatedAt,
		&respondedAt,
	)
	if err != nil {
		return EnquiryView{}, err
	}

	if view.ID, err = kernel.UUIDFrom(id); err != nil {
		return EnquiryView{}, err
	}
	if view.Size, err = bespoke.ParseSize(size); err != nil {
		return EnquiryView{}, fmt.Errorf("enquiry %s: %w", id, err)
	}
	if view.Status, err = bespoke.ParseEnquiryStatus(status); err != nil {
		return EnquiryView{}, fmt.Errorf("enquiry %s: %w", id, err)
	}
	if estimate.Valid {
		price, priceErr := kernel.NewMoney(estimate.Decimal)
		if priceErr != nil {
			return EnquiryView{}, priceErr
		}
		view.EstimatedPrice = &price
	}
	if respondedAt.Valid {
		at := respondedAt.Time
		view.RespondedAt = &at
	}
	return view, nil
}
