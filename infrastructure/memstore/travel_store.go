package memstore

import (
	"sync"

	"travelbook/domain/events"
	"travelbook/domain/travel"
)

// TravelStore keeps the active search criteria, search results,
// purchase history, recent searches and travel progress flags.
type TravelStore struct {
	mu               sync.RWMutex
	criteria         *travel.SearchCriteriaView
	travelCards      []travel.TravelCard
	purchasedTravels []travel.PurchasedTravelView
	recentSearches   []travel.SearchCriteriaView
	status           travel.TravelStatus
	bus              events.Bus
}

// NewTravelStore creates an empty travel store
func NewTravelStore(bus events.Bus) *TravelStore {
	return &TravelStore{bus: bus}
}

// SearchCriteria returns the active criteria, or nil before the first search
func (s *TravelStore) SearchCriteria() *travel.SearchCriteriaView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.criteria == nil {
		return nil
	}
	copied := *s.criteria
	return &copied
}

// TravelCards returns the current search results
func (s *TravelStore) TravelCards() []travel.TravelCard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.travelCards)
}

// PurchasedTravels returns the purchase history, newest first
func (s *TravelStore) PurchasedTravels() []travel.PurchasedTravelView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.purchasedTravels)
}

// RecentSearches returns the recent searches, newest first
func (s *TravelStore) RecentSearches() []travel.SearchCriteriaView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.recentSearches)
}

// Status returns the current travel progress flags
func (s *TravelStore) Status() travel.TravelStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// SetSearchCriteria replaces the active criteria and publishes the change
func (s *TravelStore) SetSearchCriteria(criteria *travel.SearchCriteriaView) {
	s.mu.Lock()
	s.criteria = criteria
	s.mu.Unlock()

	s.bus.Publish(events.SearchCriteriaChanged{Criteria: criteria})
}

// SetTravelCards replaces the search results and publishes the change
func (s *TravelStore) SetTravelCards(cards []travel.TravelCard) {
	s.mu.Lock()
	s.travelCards = copySlice(cards)
	s.mu.Unlock()

	s.bus.Publish(events.TravelCardsChanged{TravelCards: cards})
}

// SetPurchasedTravels replaces the purchase history and publishes the change
func (s *TravelStore) SetPurchasedTravels(purchased []travel.PurchasedTravelView) {
	s.mu.Lock()
	s.purchasedTravels = copySlice(purchased)
	s.mu.Unlock()

	s.bus.Publish(events.PurchasedTravelsChanged{PurchasedTravels: purchased})
}

// AddPurchasedTravel prepends one purchase and publishes the addition
func (s *TravelStore) AddPurchasedTravel(purchased travel.PurchasedTravelView) {
	s.mu.Lock()
	s.purchasedTravels = append([]travel.PurchasedTravelView{purchased}, s.purchasedTravels...)
	s.mu.Unlock()

	s.bus.Publish(events.PurchasedTravelAdded{PurchasedTravel: purchased})
}

// UpdatePurchasedTravel replaces the purchase with the same id in
// place and publishes the update. Entries with other ids are untouched;
// an unknown id leaves the list as it was.
func (s *TravelStore) UpdatePurchasedTravel(purchased travel.PurchasedTravelView) {
	s.mu.Lock()
	for i, existing := range s.purchasedTravels {
		if existing.ID == purchased.ID {
			s.purchasedTravels[i] = purchased
			break
		}
	}
	s.mu.Unlock()

	s.bus.Publish(events.PurchasedTravelUpdated{PurchasedTravel: purchased})
}

// SetRecentSearches replaces the recent searches and publishes the change
func (s *TravelStore) SetRecentSearches(searches []travel.SearchCriteriaView) {
	s.mu.Lock()
	s.recentSearches = copySlice(searches)
	s.mu.Unlock()

	s.bus.Publish(events.RecentSearchesChanged{RecentSearches: searches})
}

// AddRecentSearch prepends one recent search and publishes the addition
func (s *TravelStore) AddRecentSearch(search travel.SearchCriteriaView) {
	s.mu.Lock()
	s.recentSearches = append([]travel.SearchCriteriaView{search}, s.recentSearches...)
	s.mu.Unlock()

	s.bus.Publish(events.RecentSearchAdded{RecentSearch: search})
}

// SetStatus flips one travel progress flag and publishes the change
func (s *TravelStore) SetStatus(key travel.StatusKey, value bool) {
	s.mu.Lock()
	switch key {
	case travel.StatusIsLoadingCards:
		s.status.IsLoadingCards = value
	case travel.StatusIsLoadingPurchased:
		s.status.IsLoadingPurchased = value
	case travel.StatusIsLoadingSearches:
		s.status.IsLoadingSearches = value
	case travel.StatusIsLoadingDeals:
		s.status.IsLoadingDeals = value
	}
	s.mu.Unlock()

	s.bus.Publish(events.TravelStatusChanged{Key: key, Value: value})
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
