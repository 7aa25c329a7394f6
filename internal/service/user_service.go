package service

import (
	"context"
	"errors"
	"fmt"

	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/internal/util"
)

type userService struct {
	tx     domain.TxManager
	hasher util.PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(tx domain.TxManager, hasher util.PasswordHasher) domain.UserService {
	return &userService{tx: tx, hasher: hasher}
}

// Create registers a new user. The password is stored as a bcrypt digest only.
func (s *userService) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if len(req.Password) > domain.MaxPasswordBytes {
		return nil, domain.ErrPasswordTooLong
	}
	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	err = s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		existing, err := uow.Users().GetByEmail(req.Email)
		if err == nil && existing != nil {
			return domain.ErrEmailInUse
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return uow.Users().Create(user)
	})
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// Get returns the user with the given id and their blogs.
func (s *userService) Get(ctx context.Context, id uint) (*domain.User, error) {
	var user *domain.User
	err := s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		var err error
		user, err = uow.Users().GetByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
