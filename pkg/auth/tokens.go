// Package auth issues and validates the bearer tokens the HTTP layer
// hands out after login.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "travelbook/domain/auth"
	apperrors "travelbook/pkg/errors"
)

// Claims is the token payload
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// SessionTokens signs and verifies session tokens with a shared secret
type SessionTokens struct {
	secret []byte
	issuer string
	expiry time.Duration
}

// NewSessionTokens creates a token service. A zero expiry falls back
// to 24 hours.
func NewSessionTokens(secret, issuer string, expiry time.Duration) *SessionTokens {
	if expiry == 0 {
		expiry = 24 * time.Hour
	}
	return &SessionTokens{secret: []byte(secret), issuer: issuer, expiry: expiry}
}

// Issue signs a token for the session
func (s *SessionTokens) Issue(session *domainauth.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: session.Email,
		Name:  session.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   session.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewInternalError("failed to sign session token").WithCause(err)
	}
	return signed, nil
}

// Validate verifies the token and returns the session it carries
func (s *SessionTokens) Validate(tokenString string) (*domainauth.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid session token").WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewUnauthorizedError("invalid session token")
	}
	return &domainauth.Session{Email: claims.Email, Name: claims.Name}, nil
}
