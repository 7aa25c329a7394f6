package domain

import "context"

// UnitOfWork exposes repositories bound to one transaction.
type UnitOfWork interface {
	Users() UserRepository
	Blogs() BlogRepository
}

// TxManager runs fn inside a transaction: committed when fn returns nil,
// rolled back when it returns an error or panics.
type TxManager interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
}
