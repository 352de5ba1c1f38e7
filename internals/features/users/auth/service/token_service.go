// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	helper "soundwave_backend/internals/helpers"
)

const accessTTLDefault = time.Hour

// Identity is what a bearer token proves about its holder.
type Identity struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    accessTTLDefault,
		now:    time.Now,
	}
}

// WithClock replaces the time source. Tests use it to move past expiry.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs id with a one hour expiry.
func (s *TokenService) Issue(id Identity) (string, time.Time, error) {
	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		return "", time.Time{}, fmt.Errorf("email is required: %w", helper.ErrBadRequest)
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("JWT_SECRET is empty")
	}

	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := accessClaims{
		Email: email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Verify checks signature, algorithm and expiry. Every failure is reported
// as ErrUnauthorized.
func (s *TokenService) Verify(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, fmt.Errorf("no token provided: %w", helper.ErrUnauthorized)
	}

	claims := &accessClaims{}
	parser := jwt.Parser{
		ValidMethods:         []string{jwt.SigningMethodHS256.Alg()},
		SkipClaimsValidation: true,
	}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}); err != nil {
		return Identity{}, fmt.Errorf("token parse error: %w", helper.ErrUnauthorized)
	}

	// exp divalidasi manual supaya memakai clock service
	if claims.ExpiresAt == nil || !s.now().Before(claims.ExpiresAt.Time) {
		return Identity{}, fmt.Errorf("token expired: %w", helper.ErrUnauthorized)
	}
	if strings.TrimSpace(claims.Email) == "" {
		return Identity{}, fmt.Errorf("token has no email: %w", helper.ErrUnauthorized)
	}

	return Identity{Email: claims.Email, Role: claims.Role}, nil
}
