package commands

import (
	"errors"

	"wreaths/internal/core/domain/model/bespoke"
	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/guard"
)

var ErrSubmitEnquiryCommandIsNotConstructed = errors.New(
	"SubmitEnquiryCommand must be created via NewSubmitEnquiryCommand constructor",
)

// SubmitEnquiryCommand stores a completed bespoke form.
type SubmitEnquiryCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID
	form      bespoke.Form

	guard guard.ConstructorGuard
}

func NewSubmitEnquiryCommand(enquiryID kernel.UUID, form bespoke.Form) (SubmitEnquiryCommand, error) {
	if err := enquiryID.Validate(); err != nil {
		return SubmitEnquiryCommand{}, err
	}
	return SubmitEnquiryCommand{
		enquiryID: enquiryID,
		form:      form,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitEnquiryCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEnquiryCommandIsNotConstructed)
}

func (c SubmitEnquiryCommand) EnquiryID() kernel.UUID {
	return c.enquiryID
}

func (c SubmitEnquiryCommand) Form() bespoke.Form {
	return c.form
}
