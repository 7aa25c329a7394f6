package repository

import (
	"context"

	"gorm.io/gorm"
	"seungpyo.lee/BlogBackend/internal/domain"
)

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over the given GORM DB instance.
func NewTxManager(db *gorm.DB) domain.TxManager {
	return &txManager{db: db}
}

// Do runs fn in one transaction. gorm rolls back on error and on panic (re-panicking).
func (m *txManager) Do(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&unitOfWork{tx: tx})
	})
}

type unitOfWork struct {
	tx *gorm.DB
}

func (u *unitOfWork) Users() domain.UserRepository {
	return NewUserRepository(u.tx)
}

func (u *unitOfWork) Blogs() domain.BlogRepository {
	return NewBlogRepository(u.tx)
}
