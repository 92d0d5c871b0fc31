// Package enquiryrepo persists bespoke enquiries in the enquiries table.
package enquiryrepo

import (
	"fmt"
	"time"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EnquiryDTO struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name            string              `gorm:"not null"`
	Email           string              `gorm:"not null"`
	Phone           string              `gorm:"not null"`
	ArrangementType string              `gorm:"not null"`
	ColourTheme     string              `gorm:"not null"`
	WreathBase      string              `gorm:"not null"`
	Size            string              `gorm:"type:varchar(16);not null"`
	Ribbon          bool                `gorm:"not null"`
	Notes           string              `gorm:"not null"`
	EstimatedPrice  decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Status          string              `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time           `gorm:"not null"`
	RespondedAt     *time.Time
}

func (EnquiryDTO) TableName() string {
	return "enquiries"
}

func fromDomain(e *bespoke.Enquiry) EnquiryDTO {
	var estimate decimal.NullDecimal
	if price, ok := e.EstimatedPrice(); ok {
		estimate = decimal.NewNullDecimal(price.Decimal())
	}

	return EnquiryDTO{
		ID:              e.ID().Value(),
		Name:            e.Name(),
		Email:           e.Email(),
		Phone:           e.Phone(),
		ArrangementType: e.ArrangementType(),
		ColourTheme:     e.ColourTheme(),
		WreathBase:      e.WreathBase(),
		Size:            e.Size().String(),
		Ribbon:          e.Ribbon(),
		Notes:           e.Notes(),
		EstimatedPrice:  estimate,
		Status:          e.Status().String(),
		CreatedAt:       e.CreatedAt(),
		RespondedAt:     e.RespondedAt(),
	}
}

func toDomain(dto EnquiryDTO) (*bespoke.Enquiry, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := bespoke.ParseEnquiryStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("enquiry %s: %w", dto.ID, err)
	}

	var estimate *kernel.Money
	if dto.EstimatedPrice.Valid {
		price, err := kernel.NewMoney(dto.EstimatedPrice.Decimal)
		if err != nil {
			return nil, err
		}
		estimate = &price
	}

	e, err := bespoke.RestoreEnquiry(bespoke.EnquirySnapshot{
		ID: id,
		Form: bespoke.Form{
			Name:            dto.Name,
			Email:           dto.Email,
			Phone:           dto.Phone,
			ArrangementType: dto.ArrangementType,
			ColourTheme:     dto.ColourTheme,
			WreathBase:      dto.WreathBase,
			Size:            dto.Size,
			Ribbon:          dto.Ribbon,
			Notes:           dto.Notes,
		},
		EstimatedPrice: estimate,
		Status:         status,
		CreatedAt:      dto.CreatedAt,
		RespondedAt:    dto.RespondedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("enquiry %s: %w", dto.ID, err)
	}
	return e, nil
}
