package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seungpyo.lee/BlogBackend/internal/domain"
	"seungpyo.lee/BlogBackend/internal/util"
	"seungpyo.lee/BlogBackend/pkg/jwt"
)

// authService implements domain.AuthService on top of the user store and a TokenManager.
type authService struct {
	tx           domain.TxManager
	hasher       util.PasswordHasher
	TokenManager jwt.TokenManager
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthService issuing tokens valid for tokenTTL.
func NewAuthService(tx domain.TxManager, hasher util.PasswordHasher, tokenManager jwt.TokenManager, tokenTTL time.Duration) domain.AuthService {
	return &authService{tx: tx, hasher: hasher, TokenManager: tokenManager, tokenTTL: tokenTTL}
}

// Login authenticates a user by email and password and returns a bearer token.
func (s *authService) Login(ctx context.Context, email string, password string) (*domain.Token, error) {
	var user *domain.User
	err := s.tx.Do(ctx, func(uow domain.UnitOfWork) error {
		var err error
		user, err = uow.Users().GetByEmail(email)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidName
		}
		return nil, err
	}
	if !s.hasher.Verify(user.Password, password) {
		return nil, domain.ErrIncorrectPassword
	}

	accessToken, err := s.TokenManager.Issue(user.Email, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.Token{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// Logout revokes the token when a denylist is configured; otherwise it is a no-op
// and the token stays valid until it expires.
func (s *authService) Logout(ctx context.Context, token string) error {
	err := s.TokenManager.Revoke(ctx, token)
	if err != nil && !errors.Is(err, jwt.ErrRevocationDisabled) {
		return err
	}
	return nil
}
