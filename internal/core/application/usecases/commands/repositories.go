// Package commands contains the write side of the application: each command is validated on
// construction and its handler runs inside one unit of work.
package commands

import (
	"context"

	"wreaths/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	EnquiryRepoFactory interface {
		EnquiryRepository() ports.EnquiryRepository
	}

	// OrderUoW is the unit of work for commands that only touch orders.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	... uow.OrderRepository() ...
	//	return uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EnquiryUoW is the unit of work for commands that only touch bespoke enquiries.
	EnquiryUoW interface {
		TxManager
		EnquiryRepoFactory
	}

	EnquiryUoWFactory interface {
		Create() EnquiryUoW
	}
)
