package memstore

import (
	"sync"

	"travelbook/domain/events"
	"travelbook/domain/travel"
)

// LastMinuteDealsStore keeps the deals board. The seen-id set stays in
// lockstep with the ordered slice so repeated poll results never
// duplicate entries.
type LastMinuteDealsStore struct {
	mu    sync.RWMutex
	deals []travel.LastMinuteDeal
	seen  map[string]struct{}
	bus   events.Bus
}

// NewLastMinuteDealsStore creates an empty deals store
func NewLastMinuteDealsStore(bus events.Bus) *LastMinuteDealsStore {
	return &LastMinuteDealsStore{
		seen: make(map[string]struct{}),
		bus:  bus,
	}
}

// Deals returns the current deals, newest first
func (s *LastMinuteDealsStore) Deals() []travel.LastMinuteDeal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.deals)
}

// SetDeals replaces the board wholesale and resets the seen-id set.
// The change event is published even for an empty replacement so
// subscribers can clear their views.
func (s *LastMinuteDealsStore) SetDeals(deals []travel.LastMinuteDeal) {
	s.mu.Lock()
	s.deals = copySlice(deals)
	s.seen = make(map[string]struct{}, len(deals))
	for _, deal := range deals {
		s.seen[deal.ID] = struct{}{}
	}
	s.mu.Unlock()

	s.bus.Publish(events.LastMinuteDealsChanged{LastMinuteDeals: deals})
}

// AddDeals merges an incoming batch into the board. Deals whose id has
// been seen before are dropped; each new deal is prepended in turn, so
// a batch ends up in reverse relative order at the front. The added
// event fires only when the batch contributed something, and the
// returned slice holds exactly the deals that were new.
func (s *LastMinuteDealsStore) AddDeals(deals []travel.LastMinuteDeal) []travel.LastMinuteDeal {
	s.mu.Lock()
	var added []travel.LastMinuteDeal
	for _, deal := range deals {
		if _, ok := s.seen[deal.ID]; ok {
			continue
		}
		s.seen[deal.ID] = struct{}{}
		s.deals = append([]travel.LastMinuteDeal{deal}, s.deals...)
		added = append(added, deal)
	}
	s.mu.Unlock()

	if len(added) > 0 {
		s.bus.Publish(events.LastMinuteDealsAdded{LastMinuteDeals: added})
	}
	return added
}
