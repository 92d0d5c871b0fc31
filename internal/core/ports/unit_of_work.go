package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it hands out are bound to
// the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback is safe to defer; after a successful Commit it reports an error that callers ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	EnquiryRepository() EnquiryRepository
}
