package commands

import (
	"context"
	"time"
)

// MarkEnquiryRespondedCommandHandler records that the workshop replied. Repeating the call
// for an enquiry that is already responded changes nothing.
type MarkEnquiryRespondedCommandHandler struct {
	uowFactory EnquiryUoWFactory
	now        func() time.Time
}

func NewMarkEnquiryRespondedCommandHandler(uowFactory EnquiryUoWFactory) MarkEnquiryRespondedCommandHandler {
	return MarkEnquiryRespondedCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h MarkEnquiryRespondedCommandHandler) Handle(ctx context.Context, cmd MarkEnquiryRespondedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EnquiryRepository()
	enquiry, err := repo.Get(ctx, cmd.EnquiryID())
	if err != nil {
		return err
	}

	changed, err := enquiry.MarkResponded(h.now())
	if err != nil || !changed {
		return err
	}

	if err = repo.Update(ctx, enquiry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
