package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "travelbook/domain/auth"
	apperrors "travelbook/pkg/errors"
)

func TestSessionTokensRoundTrip(t *testing.T) {
	tokens := NewSessionTokens("test-secret", "travelbook", time.Hour)

	signed, err := tokens.Issue(&domainauth.Session{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	session, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, "Ada", session.Name)
}

func TestSessionTokensRejectsWrongSecret(t *testing.T) {
	issuing := NewSessionTokens("secret-a", "travelbook", time.Hour)
	validating := NewSessionTokens("secret-b", "travelbook", time.Hour)

	signed, err := issuing.Issue(&domainauth.Session{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, err = validating.Validate(signed)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSessionTokensRejectsWrongIssuer(t *testing.T) {
	issuing := NewSessionTokens("test-secret", "someone-else", time.Hour)
	validating := NewSessionTokens("test-secret", "travelbook", time.Hour)

	signed, err := issuing.Issue(&domainauth.Session{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, err = validating.Validate(signed)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSessionTokensRejectsExpired(t *testing.T) {
	tokens := NewSessionTokens("test-secret", "travelbook", -time.Minute)

	signed, err := tokens.Issue(&domainauth.Session{Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)

	_, err = tokens.Validate(signed)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestSessionTokensRejectsGarbage(t *testing.T) {
	tokens := NewSessionTokens("test-secret", "travelbook", time.Hour)

	_, err := tokens.Validate("not-a-token")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
