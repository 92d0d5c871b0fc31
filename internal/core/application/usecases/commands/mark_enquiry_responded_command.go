package commands

import (
	"errors"

	"wreaths/internal/core/domain/model/kernel"
	"wreaths/internal/pkg/guard"
)

var ErrMarkEnquiryRespondedCommandIsNotConstructed = errors.New(
	"MarkEnquiryRespondedCommand must be created via NewMarkEnquiryRespondedCommand constructor",
)

type MarkEnquiryRespondedCommand struct { //nolint:recvcheck //using for validation
	enquiryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkEnquiryRespondedCommand(enquiryID kernel.UUID) (MarkEnquiryRespondedCommand, error) {
	if err := enquiryID.Validate(); err != nil {
		return MarkEnquiryRespondedCommand{}, err
	}
	return MarkEnquiryRespondedCommand{enquiryID: enquiryID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkEnquiryRespondedCommand) Validate() error {
	return c.guard.Validate(ErrMarkEnquiryRespondedCommandIsNotConstructed)
}

func (c MarkEnquiryRespondedCommand) EnquiryID() kernel.UUID {
	return c.enquiryID
}
