package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, format or
// temporal validation. Callers translate it into a 401 response.
var ErrInvalidToken = errors.New("invalid token")

// Summary is the short id+name shape embedded for company and role.
type Summary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserToken is the structured payload carried in the "user" claim of both
// access and refresh tokens.
type UserToken struct {
	ID      int64    `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Company *Summary `json:"company,omitempty"`
	Role    *Summary `json:"role,omitempty"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	User UserToken `json:"user"`
}

// Authority mints and validates signed tokens. It never touches storage:
// persisting the refresh token against the user record is the caller's job.
type Authority struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthority builds a token authority from configured key material and
// validity windows. A missing secret or non-positive validity is a fatal
// configuration error, not a per-call failure.
func NewAuthority(secret string, accessValiditySeconds, refreshValiditySeconds int64) (*Authority, error) {
	if secret == "" {
		return nil, errors.New("jwt signing secret is not configured")
	}
	if accessValiditySeconds <= 0 {
		return nil, fmt.Errorf("invalid access token validity: %d seconds", accessValiditySeconds)
	}
	if refreshValiditySeconds <= 0 {
		return nil, fmt.Errorf("invalid refresh token validity: %d seconds", refreshValiditySeconds)
	}
	return &Authority{
		secret:     []byte(secret),
		accessTTL:  time.Duration(accessValiditySeconds) * time.Second,
		refreshTTL: time.Duration(refreshValiditySeconds) * time.Second,
	}, nil
}

// CreateAccessToken signs a short-lived token with subject = email and the
// user payload embedded in the "user" claim.
func (a *Authority) CreateAccessToken(email string, user UserToken) (string, error) {
	return a.signedToken(email, user, a.accessTTL)
}

// CreateRefreshToken is the same shape as an access token with the longer
// refresh validity window. It does not persist anything.
func (a *Authority) CreateRefreshToken(email string, user UserToken) (string, error) {
	return a.signedToken(email, user, a.refreshTTL)
}

func (a *Authority) signedToken(email string, user UserToken, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		User: user,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate decodes a token and verifies its signature and temporal claims.
// Any failure is reported as ErrInvalidToken.
func (a *Authority) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CheckValidRefreshToken verifies the signature and expiry of a refresh
// token. It deliberately does not compare the token against the value
// persisted on the user record; callers that rotate tokens must perform
// that cross-check themselves.
func (a *Authority) CheckValidRefreshToken(tokenString string) (*Claims, error) {
	return a.Validate(tokenString)
}

// AccessTokenValidity returns the configured access token lifetime.
func (a *Authority) AccessTokenValidity() time.Duration {
	return a.accessTTL
}

// RefreshTokenValidity returns the configured refresh token lifetime.
func (a *Authority) RefreshTokenValidity() time.Duration {
	return a.refreshTTL
}
