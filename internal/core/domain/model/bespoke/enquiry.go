package bespoke

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/errs"
)

// EnquiryStatus tracks whether the workshop has replied to an enquiry.
type EnquiryStatus int

const (
	EnquiryUnknown EnquiryStatus = iota
	EnquiryNew
	EnquiryResponded
)

func (s EnquiryStatus) String() string {
	switch s {
	case EnquiryNew:
		return "new"
	case EnquiryResponded:
		return "responded"
	default:
		return "unknown"
	}
}

func ParseEnquiryStatus(s string) (EnquiryStatus, error) {
	switch s {
	case "new":
		return EnquiryNew, nil
	case "responded":
		return EnquiryResponded, nil
	default:
		return EnquiryUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an enquiry status", s))
	}
}

var ErrEnquiryIsNotConstructed = errors.New("Enquiry must be created via NewEnquiry constructor")

// Enquiry is a submitted bespoke form together with the estimate shown at submission time.
type Enquiry struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	arrangementType string
	colourTheme     string
	wreathBase      string
	size            Size
	ribbon          bool
	notes           string
	estimatedPrice  *kernel.Money
	status          EnquiryStatus
	createdAt       time.Time
	respondedAt     *time.Time

	isConstructed bool
}

// NewEnquiry validates a submitted form and snapshots its estimate from prices.
// Every required field must be filled and the size must be a known size key.
func NewEnquiry(id kernel.UUID, form Form, prices PriceTable) (*Enquiry, error) {
	e := &Enquiry{
		status:        EnquiryNew,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}
	if err := e.setForm(id, form); err != nil {
		return nil, err
	}
	if estimate, ok := prices.Estimate(e.size, e.ribbon); ok {
		e.estimatedPrice = &estimate
	}
	return e, nil
}

// EnquirySnapshot is the stored form of an enquiry.
type EnquirySnapshot struct {
	ID             kernel.UUID
	Form           Form
	EstimatedPrice *kernel.Money
	Status         EnquiryStatus
	CreatedAt      time.Time
	RespondedAt    *time.Time
}

func RestoreEnquiry(s EnquirySnapshot) (*Enquiry, error) {
	e := &Enquiry{
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}
	if err := e.setForm(s.ID, s.Form); err != nil {
		return nil, err
	}
	if s.Status != EnquiryNew && s.Status != EnquiryResponded {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not an enquiry status", s.Status))
	}
	if s.EstimatedPrice != nil {
		if err := s.EstimatedPrice.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("estimatedPrice", err)
		}
		price := *s.EstimatedPrice
		e.estimatedPrice = &price
	}
	e.status = s.Status
	if s.RespondedAt != nil {
		at := *s.RespondedAt
		e.respondedAt = &at
	}
	return e, nil
}

func (e *Enquiry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEnquiryIsNotConstructed
	}
	return nil
}

// MarkResponded records the reply. Marking an already responded enquiry is a no-op.
func (e *Enquiry) MarkResponded(at time.Time) (changed bool, err error) {
	if err = e.Validate(); err != nil {
		return false, err
	}
	if e.status == EnquiryResponded {
		return false, nil
	}
	at = at.UTC()
	e.status = EnquiryResponded
	e.respondedAt = &at
	return true, nil
}

func (e *Enquiry) ID() kernel.UUID {
	return e.id
}

func (e *Enquiry) Name() string {
	return e.name
}

func (e *Enquiry) Email() string {
	return e.email
}

func (e *Enquiry) Phone() string {
	return e.phone
}

func (e *Enquiry) ArrangementType() string {
	return e.arrangementType
}

func (e *Enquiry) ColourTheme() string {
	return e.colourTheme
}

func (e *Enquiry) WreathBase() string {
	return e.wreathBase
}

func (e *Enquiry) Size() Size {
	return e.size
}

func (e *Enquiry) Ribbon() bool {
	return e.ribbon
}

func (e *Enquiry) Notes() string {
	return e.notes
}

func (e *Enquiry) Status() EnquiryStatus {
	return e.status
}

func (e *Enquiry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Enquiry) RespondedAt() *time.Time {
	return e.respondedAt
}

// EstimatedPrice is the estimate shown when the form was submitted; false means a quote was required.
func (e *Enquiry) EstimatedPrice() (kernel.Money, bool) {
	if e.estimatedPrice == nil {
		return kernel.Money{}, false
	}
	return *e.estimatedPrice, true
}

// Form returns the submitted values.
func (e *Enquiry) Form() Form {
	return Form{
		Name:            e.name,
		Email:           e.email,
		Phone:           e.phone,
		ArrangementType: e.arrangementType,
		ColourTheme:     e.colourTheme,
		WreathBase:      e.wreathBase,
		Size:            e.size.String(),
		Ribbon:          e.ribbon,
		Notes:           e.notes,
	}
}

func (e *Enquiry) setForm(id kernel.UUID, form Form) error {
	errList := []error{id.Validate()}
	for _, field := range form.MissingFields() {
		errList = append(errList, errs.NewValueIsRequiredError(field.String()))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	size, err := ParseSize(form.Size)
	if err != nil {
		return err
	}
	email := strings.TrimSpace(form.Email)
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}

	e.id = id
	e.name = strings.TrimSpace(form.Name)
	e.email = email
	e.phone = strings.TrimSpace(form.Phone)
	e.arrangementType = strings.TrimSpace(form.ArrangementType)
	e.colourTheme = strings.TrimSpace(form.ColourTheme)
	e.wreathBase = strings.TrimSpace(form.WreathBase)
	e.size = size
	e.ribbon = form.Ribbon
	e.notes = strings.TrimSpace(form.Notes)
	return nil
}
