package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

func TestAuthGateway_RegisterThenLogin(t *testing.T) {
	gateway := NewAuthGateway(kvstore.NewMemoryStore())
	ctx := context.Background()

	registered, err := gateway.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", registered.Name)

	session, err := gateway.Login(ctx, "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", session.Email)
	assert.Equal(t, "Ada", session.Name)
}

func TestAuthGateway_WrongPasswordAndUnknownEmailFailAlike(t *testing.T) {
	gateway := NewAuthGateway(kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := gateway.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	_, wrongPassword := gateway.Login(ctx, "ada@example.com", "nope")
	_, unknownEmail := gateway.Login(ctx, "ghost@example.com", "secret")

	assert.True(t, apperrors.IsInvalidCredentials(wrongPassword))
	assert.True(t, apperrors.IsInvalidCredentials(unknownEmail))
}

func TestAuthGateway_DuplicateEmailRejected(t *testing.T) {
	gateway := NewAuthGateway(kvstore.NewMemoryStore())
	ctx := context.Background()

	_, err := gateway.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	_, err = gateway.Register(ctx, "ada@example.com", "other", "Imposter")
	assert.True(t, apperrors.IsDuplicateCredentials(err))
}

func TestSessionProvider_SaveRestoreClear(t *testing.T) {
	provider := NewSessionProvider(kvstore.NewMemoryStore())
	ctx := context.Background()

	restored, err := provider.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	gateway := NewAuthGateway(kvstore.NewMemoryStore())
	session, err := gateway.Register(ctx, "ada@example.com", "secret", "Ada")
	require.NoError(t, err)

	require.NoError(t, provider.Save(ctx, session))
	restored, err = provider.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "ada@example.com", restored.Email)

	require.NoError(t, provider.Clear(ctx))
	restored, err = provider.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}
