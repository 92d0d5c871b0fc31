package commands

import (
	"context"

	"wreaths/internal/core/domain/model/bespoke"
)

// SubmitEnquiryCommandHandler validates the form, snapshots the current estimate and stores the enquiry.
type SubmitEnquiryCommandHandler struct {
	uowFactory EnquiryUoWFactory
	prices     bespoke.PriceTable
}

func NewSubmitEnquiryCommandHandler(uowFactory EnquiryUoWFactory, prices bespoke.PriceTable) SubmitEnquiryCommandHandler {
	return SubmitEnquiryCommandHandler{
		uowFactory: uowFactory,
		prices:     prices,
	}
}

func (h SubmitEnquiryCommandHandler) Handle(ctx context.Context, cmd SubmitEnquiryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	enquiry, err := bespoke.NewEnquiry(cmd.EnquiryID(), cmd.Form(), h.prices)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EnquiryRepository().Add(ctx, enquiry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
