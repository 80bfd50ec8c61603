package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMalformed means the token could not be parsed or lacks a subject.
	ErrMalformed = errors.New("token malformed")
	// ErrInvalidSignature means the token was not signed with our secret.
	ErrInvalidSignature = errors.New("token signature invalid")
	// ErrExpired means the token's expiry has passed.
	ErrExpired = errors.New("token expired")
)

// TokenProvider issues and validates bearer tokens bound to a user id.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption customizes a TokenProvider.
type TokenOption func(*TokenProvider)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(p *TokenProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewTokenProvider builds a provider signing with HS256.
func NewTokenProvider(secret string, ttl time.Duration, opts ...TokenOption) (*TokenProvider, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	p := &TokenProvider{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Issue signs a token whose subject is userID and which expires after the
// configured ttl. The returned expiry equals the one encoded in the token.
func (p *TokenProvider) Issue(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("user id is empty")
	}
	issuedAt := p.now().Truncate(jwt.TimePrecision)
	expiresAt := issuedAt.Add(p.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token and returns its subject.
func (p *TokenProvider) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return "", classify(err)
	}
	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSignature
	default:
		return ErrMalformed
	}
}
