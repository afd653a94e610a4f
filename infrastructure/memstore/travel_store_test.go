package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/domain/events"
	"travelbook/domain/travel"
	"travelbook/infrastructure/messaging"
)

func purchasedView(id, name string) travel.PurchasedTravelView {
	return travel.PurchasedTravelView{ID: id, Name: name, From: "Berlin", To: "Lisbon"}
}

func TestTravelStore_SettersPublish(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewTravelStore(bus)

	var received []string
	for _, eventType := range []string{
		events.TypeSearchCriteriaChanged,
		events.TypeTravelCardsChanged,
		events.TypePurchasedTravelsChanged,
		events.TypeRecentSearchesChanged,
	} {
		et := eventType
		bus.Subscribe(et, func(events.Event) { received = append(received, et) })
	}

	store.SetSearchCriteria(&travel.SearchCriteriaView{From: "Berlin", To: "Lisbon"})
	store.SetTravelCards(nil)
	store.SetPurchasedTravels(nil)
	store.SetRecentSearches(nil)

	assert.Equal(t, []string{
		events.TypeSearchCriteriaChanged,
		events.TypeTravelCardsChanged,
		events.TypePurchasedTravelsChanged,
		events.TypeRecentSearchesChanged,
	}, received)
}

func TestTravelStore_AddPurchasedTravelPrepends(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewTravelStore(bus)

	var added []travel.PurchasedTravelView
	bus.Subscribe(events.TypePurchasedTravelAdded, func(e events.Event) {
		added = append(added, e.(events.PurchasedTravelAdded).PurchasedTravel)
	})

	store.AddPurchasedTravel(purchasedView("p1", "first"))
	store.AddPurchasedTravel(purchasedView("p2", "second"))

	purchased := store.PurchasedTravels()
	require.Len(t, purchased, 2)
	assert.Equal(t, "p2", purchased[0].ID)
	assert.Equal(t, "p1", purchased[1].ID)
	assert.Len(t, added, 2)
}

func TestTravelStore_UpdatePurchasedTravelReplacesByID(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewTravelStore(bus)

	store.AddPurchasedTravel(purchasedView("p1", "old name"))
	store.AddPurchasedTravel(purchasedView("p2", "keep me"))

	var updated *travel.PurchasedTravelView
	bus.Subscribe(events.TypePurchasedTravelUpdated, func(e events.Event) {
		view := e.(events.PurchasedTravelUpdated).PurchasedTravel
		updated = &view
	})

	store.UpdatePurchasedTravel(purchasedView("p1", "new name"))

	purchased := store.PurchasedTravels()
	require.Len(t, purchased, 2)
	assert.Equal(t, "keep me", purchased[0].Name)
	assert.Equal(t, "new name", purchased[1].Name)
	require.NotNil(t, updated)
	assert.Equal(t, "p1", updated.ID)
}

func TestTravelStore_AddRecentSearchPrepends(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewTravelStore(bus)

	store.AddRecentSearch(travel.SearchCriteriaView{From: "Berlin", To: "Lisbon"})
	store.AddRecentSearch(travel.SearchCriteriaView{From: "Oslo", To: "Rome"})

	searches := store.RecentSearches()
	require.Len(t, searches, 2)
	assert.Equal(t, "Oslo", searches[0].From)
}

func TestTravelStore_SetStatusPublishesKeyAndValue(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewTravelStore(bus)

	var got *events.TravelStatusChanged
	bus.Subscribe(events.TypeTravelStatusChanged, func(e events.Event) {
		changed := e.(events.TravelStatusChanged)
		got = &changed
	})

	store.SetStatus(travel.StatusIsLoadingCards, true)

	require.NotNil(t, got)
	assert.Equal(t, travel.StatusIsLoadingCards, got.Key)
	assert.True(t, got.Value)
	assert.True(t, store.Status().IsLoadingCards)
	assert.False(t, store.Status().IsLoadingDeals)
}
