package processes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/services"
	"travelbook/domain/auth"
	"travelbook/domain/shared"
	"travelbook/infrastructure/kvstore"
	"travelbook/infrastructure/localstore"
	"travelbook/infrastructure/memstore"
	"travelbook/infrastructure/messaging"
)

type processFixture struct {
	bus      *messaging.MemoryBus
	sessions *memstore.SessionStore
	travels  *memstore.TravelStore
	deals    *memstore.LastMinuteDealsStore
	provider *localstore.SessionProvider
	process  *InitSessionProcess
	restore  *services.RestoreUserHandler
	watch    *services.DealsWatch
}

func newProcessFixture(t *testing.T) *processFixture {
	t.Helper()
	logger := zap.NewNop()
	bus := messaging.NewMemoryBus(logger)
	store := kvstore.NewMemoryStore()
	sessions := memstore.NewSessionStore(bus)
	travels := memstore.NewTravelStore(bus)
	deals := memstore.NewLastMinuteDealsStore(bus)

	offers := localstore.NewOffersRepository(store)
	specialOffersRepo := localstore.NewSpecialOffersRepository(store)
	profiles := localstore.NewProfileStore(store, sessions)
	purchases := localstore.NewPurchasedTravelsRepository(profiles)
	travelsProvider := localstore.NewTravelsProvider(offers, specialOffersRepo, profiles)
	sessionProvider := localstore.NewSessionProvider(store)

	// Seed one search so the preload has something to surface.
	sessions.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})
	search := services.NewSearchTravelsHandler(travelsProvider, travels, 0, logger)
	_, err := search.Execute(context.Background(), commands.SearchTravelsQuery{
		From:          "Berlin",
		To:            "Lisbon",
		TravelClasses: []shared.TravelClass{shared.TravelClassEconomy},
	})
	require.NoError(t, err)
	require.NoError(t, sessionProvider.Save(context.Background(), sessions.Session()))
	sessions.SetSession(nil)
	travels.SetRecentSearches(nil)

	process := NewInitSessionProcess(
		bus,
		services.NewGetRecentSearchesHandler(travelsProvider, travels),
		services.NewGetPurchasedTravelsHandler(purchases, travels),
		services.NewGetLastMinuteDealsHandler(travelsProvider, deals, travels),
		logger,
	)

	return &processFixture{
		bus:      bus,
		sessions: sessions,
		travels:  travels,
		deals:    deals,
		provider: sessionProvider,
		process:  process,
		restore:  services.NewRestoreUserHandler(sessionProvider, sessions, logger),
		watch:    services.NewDealsWatch(travelsProvider, deals, logger),
	}
}

func TestInitSessionProcess_PreloadsOnSignIn(t *testing.T) {
	f := newProcessFixture(t)
	f.process.Run(context.Background())
	defer f.process.Shutdown()

	f.sessions.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})

	searches := f.travels.RecentSearches()
	require.Len(t, searches, 1)
	assert.Equal(t, "Berlin", searches[0].From)
}

func TestInitSessionProcess_IgnoresSignOut(t *testing.T) {
	f := newProcessFixture(t)
	f.process.Run(context.Background())
	defer f.process.Shutdown()

	f.sessions.SetSession(nil)

	assert.Empty(t, f.travels.RecentSearches())
}

func TestInitSessionProcess_ShutdownStopsPreloading(t *testing.T) {
	f := newProcessFixture(t)
	f.process.Run(context.Background())
	f.process.Shutdown()

	f.sessions.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})

	assert.Empty(t, f.travels.RecentSearches())
}

func TestInitProcess_RestoresSessionAndStartsWatch(t *testing.T) {
	f := newProcessFixture(t)
	f.process.Run(context.Background())
	defer f.process.Shutdown()

	init := NewInitProcess(f.restore, f.watch, time.Hour, zap.NewNop())
	init.Run(context.Background())
	defer init.Shutdown()

	require.NotNil(t, f.sessions.Session())
	assert.Equal(t, "ada@example.com", f.sessions.Session().Email)
	assert.True(t, f.watch.Running())
	assert.Len(t, f.travels.RecentSearches(), 1)
}
