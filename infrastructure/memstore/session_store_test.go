package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/domain/auth"
	"travelbook/domain/events"
	"travelbook/infrastructure/messaging"
)

func TestSessionStore_SetSessionPublishes(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewSessionStore(bus)

	var published []*auth.Session
	bus.Subscribe(events.TypeSessionChanged, func(e events.Event) {
		published = append(published, e.(events.SessionChanged).Session)
	})

	store.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})
	store.SetSession(nil)

	require.Len(t, published, 2)
	assert.Equal(t, "ada@example.com", published[0].Email)
	assert.Nil(t, published[1])
	assert.Nil(t, store.Session())
}

func TestSessionStore_SetStatusPublishes(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewSessionStore(bus)

	var got *events.SessionStatusChanged
	bus.Subscribe(events.TypeSessionStatusChanged, func(e events.Event) {
		changed := e.(events.SessionStatusChanged)
		got = &changed
	})

	store.SetStatus(auth.StatusIsLoading, true)

	require.NotNil(t, got)
	assert.Equal(t, auth.StatusIsLoading, got.Key)
	assert.True(t, got.Value)
	assert.True(t, store.Status().IsLoading)
}

func TestSessionStore_SessionReturnsCopy(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewSessionStore(bus)

	store.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})

	first := store.Session()
	first.Name = "changed"

	assert.Equal(t, "Ada", store.Session().Name)
}
