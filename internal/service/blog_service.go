package service

import (
	"context"
	"errors"

	"seungpyo.lee/BlogBackend/internal/domain"
)

type blogService struct {
	tx      domain.TxManager
	ownerID uint
}

// NewBlogService creates a new BlogService. A non-zero ownerID assigns every
// new blog to that user; zero assigns it to the caller.
func NewBlogService(tx domain.TxManager, ownerID uint) domain.BlogService {
	return &blogService{tx: tx, ownerID: ownerID}
}

// Create stores a new blog owned according to the owner policy.
func (s *blogService) Create(ctx context.Context, caller string, req domain.BlogRequest) (*domain.Blog, error) {
	if caller == "" {
		return nil, domain.ErrUnauthenticated
	}
	blog := &domain.Blog{Title: req.Title, Body: req.Body}
	err := s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		ownerID, err := s.resolveOwner(uow, caller)
		if err != nil {
			return err
		}
		blog.UserID = ownerID
		return uow.Blogs().Create(blog)
	})
	if err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Get(ctx context.Context, caller string, id uint) (*domain.Blog, error) {
	if caller == "" {
		return nil, domain.ErrUnauthenticated
	}
	var blog *domain.Blog
	err := s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		var err error
		blog, err = uow.Blogs().GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) List(ctx context.Context, caller string) ([]*domain.Blog, error) {
	if caller == "" {
		return nil, domain.ErrUnauthenticated
	}
	var blogs []*domain.Blog
	err := s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		var err error
		blogs, err = uow.Blogs().List()
		return err
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

// Update replaces title and body of the blog.
func (s *blogService) Update(ctx context.Context, caller string, id uint, req domain.BlogRequest) error {
	if caller == "" {
		return domain.ErrUnauthenticated
	}
	return s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		return uow.Blogs().Update(id, req.Title, req.Body)
	})
}

func (s *blogService) Delete(ctx context.Context, caller string, id uint) error {
	if caller == "" {
		return domain.ErrUnauthenticated
	}
	return s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		return uow.Blogs().Delete(id)
	})
}

func (s *blogService) resolveOwner(uow domain.UnitOfWork, caller string) (uint, error) {
	if s.ownerID != 0 {
		if _, err := uow.Users().GetByID(s.ownerID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return 0, domain.ErrOwnerNotFound
			}
			return 0, err
		}
		return s.ownerID, nil
	}
	user, err := uow.Users().GetByEmail(caller)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return 0, domain.ErrUnauthenticated
		}
		return 0, err
	}
	return user.ID, nil
}
