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

func deal(id string) travel.LastMinuteDeal {
	return travel.LastMinuteDeal{ID: id, From: "Berlin", To: "Lisbon"}
}

func dealIDs(deals []travel.LastMinuteDeal) []string {
	ids := make([]string, 0, len(deals))
	for _, d := range deals {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestLastMinuteDealsStore_AddDealsDropsSeenIDs(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewLastMinuteDealsStore(bus)

	first := store.AddDeals([]travel.LastMinuteDeal{deal("A"), deal("B")})
	assert.Equal(t, []string{"A", "B"}, dealIDs(first))

	second := store.AddDeals([]travel.LastMinuteDeal{deal("A"), deal("C")})
	assert.Equal(t, []string{"C"}, dealIDs(second))

	assert.Equal(t, []string{"C", "B", "A"}, dealIDs(store.Deals()))
}

func TestLastMinuteDealsStore_AddDealsPrependsBatchInReverse(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewLastMinuteDealsStore(bus)

	store.AddDeals([]travel.LastMinuteDeal{deal("A"), deal("B"), deal("C")})

	assert.Equal(t, []string{"C", "B", "A"}, dealIDs(store.Deals()))
}

func TestLastMinuteDealsStore_AddDealsPublishesOnlyWhenSomethingIsNew(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewLastMinuteDealsStore(bus)

	var published [][]string
	bus.Subscribe(events.TypeLastMinuteDealsAdded, func(e events.Event) {
		added := e.(events.LastMinuteDealsAdded)
		published = append(published, dealIDs(added.LastMinuteDeals))
	})

	store.AddDeals([]travel.LastMinuteDeal{deal("A")})
	store.AddDeals([]travel.LastMinuteDeal{deal("A")})
	store.AddDeals(nil)

	require.Len(t, published, 1)
	assert.Equal(t, []string{"A"}, published[0])
}

func TestLastMinuteDealsStore_SetDealsAlwaysPublishes(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewLastMinuteDealsStore(bus)

	publishes := 0
	bus.Subscribe(events.TypeLastMinuteDealsChanged, func(events.Event) { publishes++ })

	store.SetDeals([]travel.LastMinuteDeal{deal("A")})
	store.SetDeals(nil)

	assert.Equal(t, 2, publishes)
	assert.Empty(t, store.Deals())
}

func TestLastMinuteDealsStore_SetDealsResetsSeenIDs(t *testing.T) {
	bus := messaging.NewMemoryBus(zap.NewNop())
	store := NewLastMinuteDealsStore(bus)

	store.AddDeals([]travel.LastMinuteDeal{deal("A")})
	store.SetDeals(nil)

	added := store.AddDeals([]travel.LastMinuteDeal{deal("A")})
	assert.Equal(t, []string{"A"}, dealIDs(added))
}
