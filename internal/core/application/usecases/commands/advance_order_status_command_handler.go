package commands

import (
	"context"
)

// AdvanceOrderStatusCommandHandler applies a status change inside a transaction.
//
// The order decides whether the move is legal. An illegal move returns
// *order.IllegalTransitionError before any write, and a repeated request for the current
// status commits nothing. Any failure rolls the transaction back, leaving the stored
// order unchanged.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.Advance(cmd.Target(), cmd.TrackingNumber())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
