package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/domain/auth"
	"travelbook/infrastructure/memstore"
	"travelbook/infrastructure/messaging"
	apperrors "travelbook/pkg/errors"
)

func TestRequireAuth_RejectsWithoutSession(t *testing.T) {
	sessions := memstore.NewSessionStore(messaging.NewMemoryBus(zap.NewNop()))
	inner := &countingUseCase{result: "purchased "}
	guarded := NewRequireAuth[string, string](inner, sessions)

	_, err := guarded.Execute(context.Background(), "t1")

	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, 0, inner.calls, "inner use case must not run")
}

func TestRequireAuth_DelegatesWithSession(t *testing.T) {
	sessions := memstore.NewSessionStore(messaging.NewMemoryBus(zap.NewNop()))
	sessions.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})

	inner := &countingUseCase{result: "purchased "}
	guarded := NewRequireAuth[string, string](inner, sessions)

	result, err := guarded.Execute(context.Background(), "t1")

	require.NoError(t, err)
	assert.Equal(t, "purchased t1", result)
	assert.Equal(t, 1, inner.calls)
}
