package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// ErrAuth is the parent of every token validation failure.
var ErrAuth = errors.New("token authentication failed")

var (
	// ErrInvalidSignature is returned when the signature does not verify with the configured key.
	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrAuth)
	// ErrExpired is returned when the current time is past the token expiry.
	ErrExpired = fmt.Errorf("%w: token is expired", ErrAuth)
	// ErrMalformed is returned when the token cannot be parsed or carries no subject.
	ErrMalformed = fmt.Errorf("%w: malformed token", ErrAuth)
	// ErrRevoked is returned when the token is in the redis denylist.
	ErrRevoked = fmt.Errorf("%w: token is revoked", ErrAuth)
)

// ErrRevocationDisabled is returned by Revoke when no redis client is configured.
var ErrRevocationDisabled = errors.New("token revocation is not configured")

// Claims defines the JWT claims. The subject carries the user's email.
type Claims struct {
	jwtlib.RegisteredClaims
}

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Validate(ctx context.Context, tokenString string) (string, error)
	Revoke(ctx context.Context, tokenString string) error
}

// Option configures a TokenManager.
type Option func(*tokenManager)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *tokenManager) {
		j.now = now
	}
}

// WithRedis enables the revocation denylist.
func WithRedis(client *redis.Client) Option {
	return func(j *tokenManager) {
		j.redis = client
	}
}

// NewTokenManager creates a new TokenManager signing with secretKey (HS256).
func NewTokenManager(secretKey string, opts ...Option) TokenManager {
	j := &tokenManager{secretKey: []byte(secretKey), now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

type tokenManager struct {
	secretKey []byte
	redis     *redis.Client
	now       func() time.Time
}

// Issue creates a signed token for subject expiring ttl from now.
func (j *tokenManager) Issue(subject string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwtlib.NewNumericDate(now),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the token and returns its subject.
func (j *tokenManager) Validate(ctx context.Context, tokenString string) (string, error) {
	claims, err := j.parse(tokenString)
	if err != nil {
		return "", err
	}
	revoked, err := j.isRevoked(ctx, tokenString)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", ErrRevoked
	}
	return claims.Subject, nil
}

// Revoke stores the token in the denylist until it would naturally expire.
func (j *tokenManager) Revoke(ctx context.Context, tokenString string) error {
	if j.redis == nil {
		return ErrRevocationDisabled
	}
	claims, err := j.parse(tokenString)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(j.now())
	if ttl <= 0 {
		return nil // already expired
	}
	if err := j.redis.Set(ctx, redisKey(tokenString), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (j *tokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenString, &Claims{}, func(token *jwtlib.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(j.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwtlib.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwtlib.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

func (j *tokenManager) isRevoked(ctx context.Context, tokenString string) (bool, error) {
	if j.redis == nil {
		return false, nil
	}
	res, err := j.redis.Exists(ctx, redisKey(tokenString)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token denylist: %w", err)
	}
	return res == 1, nil
}

// redisKey generates a Redis key for a JWT token.
func redisKey(tokenString string) string {
	return "jwt:denylist:" + tokenString
}
