package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/domain/travel"
	"travelbook/infrastructure/localstore"
	"travelbook/infrastructure/memstore"
	"travelbook/infrastructure/messaging"
)

type dealsFixture struct {
	*adminFixture
	deals    *memstore.LastMinuteDealsStore
	travels  *memstore.TravelStore
	provider *localstore.TravelsProvider
}

func newDealsFixture(t *testing.T) *dealsFixture {
	t.Helper()
	admin := newAdminFixture(t)
	bus := messaging.NewMemoryBus(zap.NewNop())
	profiles := localstore.NewProfileStore(admin.store, memstore.NewSessionStore(bus))
	return &dealsFixture{
		adminFixture: admin,
		deals:        memstore.NewLastMinuteDealsStore(bus),
		travels:      memstore.NewTravelStore(bus),
		provider:     localstore.NewTravelsProvider(admin.offersRepo, admin.specialOffersRepo, profiles),
	}
}

func (f *dealsFixture) addDeal(t *testing.T, price float64, description string) {
	t.Helper()
	offer := f.addOffer(t)
	_, err := f.specialOffers.Add(context.Background(), commands.AddSpecialOfferCommand{
		OfferID:      offer.ID(),
		SpecialPrice: price,
		Description:  description,
	})
	require.NoError(t, err)
}

func TestGetLastMinuteDeals_ReplacesBoard(t *testing.T) {
	f := newDealsFixture(t)
	f.addDeal(t, 75, "late summer escape")
	f.deals.SetDeals([]travel.LastMinuteDeal{{ID: "stale"}})

	handler := NewGetLastMinuteDealsHandler(f.provider, f.deals, f.travels)
	deals, err := handler.Execute(context.Background(), commands.GetLastMinuteDealsQuery{})
	require.NoError(t, err)

	require.Len(t, deals, 1)
	board := f.deals.Deals()
	require.Len(t, board, 1)
	assert.NotEqual(t, "stale", board[0].ID)
	assert.False(t, f.travels.Status().IsLoadingDeals)
}

func TestGetLastMinuteDeals_EmptyFetchStillReplaces(t *testing.T) {
	f := newDealsFixture(t)
	f.deals.SetDeals([]travel.LastMinuteDeal{{ID: "stale"}})

	handler := NewGetLastMinuteDealsHandler(f.provider, f.deals, f.travels)
	deals, err := handler.Execute(context.Background(), commands.GetLastMinuteDealsQuery{})
	require.NoError(t, err)

	assert.Empty(t, deals)
	assert.Empty(t, f.deals.Deals())
}

func TestDealsWatch_FirstTickRunsBeforeStartReturns(t *testing.T) {
	f := newDealsFixture(t)
	f.addDeal(t, 75, "late summer escape")

	watch := NewDealsWatch(f.provider, f.deals, zap.NewNop())
	watch.Start(time.Hour)
	defer watch.Stop()

	assert.Len(t, f.deals.Deals(), 1)
	assert.True(t, watch.Running())
}

func TestDealsWatch_StartTwiceIsNoOp(t *testing.T) {
	f := newDealsFixture(t)
	f.addDeal(t, 75, "late summer escape")

	watch := NewDealsWatch(f.provider, f.deals, zap.NewNop())
	watch.Start(time.Hour)
	defer watch.Stop()

	watch.Start(time.Hour)

	// The second Start must not have re-ticked into a fresh board.
	assert.Len(t, f.deals.Deals(), 1)
	assert.True(t, watch.Running())
}

func TestDealsWatch_StopIsIdempotent(t *testing.T) {
	f := newDealsFixture(t)
	watch := NewDealsWatch(f.provider, f.deals, zap.NewNop())

	watch.Stop()

	watch.Start(time.Hour)
	watch.Stop()
	watch.Stop()

	assert.False(t, watch.Running())
}

func TestDealsWatch_TicksMergeInsteadOfReplacing(t *testing.T) {
	f := newDealsFixture(t)
	f.addDeal(t, 75, "late summer escape")

	watch := NewDealsWatch(f.provider, f.deals, zap.NewNop())
	watch.Start(time.Hour)
	watch.Stop()

	f.addDeal(t, 50, "weekend hop")
	watch.Start(time.Hour)
	watch.Stop()

	assert.Len(t, f.deals.Deals(), 2)
}
