package events

import (
	"travelbook/domain/auth"
	"travelbook/domain/travel"
)

// Event is the contract every published event satisfies. The type
// identifier is the stable wire name consumers subscribe with; it is
// an explicit discriminant, not derived from runtime type metadata.
type Event interface {
	EventType() string
}

// Stable event identifiers
const (
	TypeSessionChanged          = "Auth.SessionChanged"
	TypeSessionStatusChanged    = "Auth.SessionStatusChanged"
	TypeSearchCriteriaChanged   = "Travel.SearchCriteriaChanged"
	TypeTravelCardsChanged      = "Travel.TravelCardsChanged"
	TypePurchasedTravelsChanged = "Travel.PurchasedTravelsChanged"
	TypePurchasedTravelAdded    = "Travel.PurchasedTravelAdded"
	TypePurchasedTravelUpdated  = "Travel.PurchasedTravelUpdated"
	TypeRecentSearchesChanged   = "Travel.RecentSearchesChanged"
	TypeRecentSearchAdded       = "Travel.RecentSearchAdded"
	TypeLastMinuteDealsChanged  = "Travel.LastMinuteDealsChanged"
	TypeLastMinuteDealsAdded    = "Travel.LastMinuteDealsAdded"
	TypeTravelStatusChanged     = "Travel.TravelStatusChanged"
)

// Auth events

// SessionChanged is published when the session is set or cleared
type SessionChanged struct {
	Session *auth.Session `json:"session"`
}

// EventType implements Event
func (SessionChanged) EventType() string { return TypeSessionChanged }

// SessionStatusChanged is published when an auth loading flag changes
type SessionStatusChanged struct {
	Key   auth.StatusKey `json:"key"`
	Value bool           `json:"value"`
}

// EventType implements Event
func (SessionStatusChanged) EventType() string { return TypeSessionStatusChanged }

// Travel events

// SearchCriteriaChanged is published when the active criteria is replaced
type SearchCriteriaChanged struct {
	Criteria *travel.SearchCriteriaView `json:"criteria"`
}

// EventType implements Event
func (SearchCriteriaChanged) EventType() string { return TypeSearchCriteriaChanged }

// TravelCardsChanged is published when the result list is replaced
type TravelCardsChanged struct {
	TravelCards []travel.TravelCard `json:"travelCards"`
}

// EventType implements Event
func (TravelCardsChanged) EventType() string { return TypeTravelCardsChanged }

// PurchasedTravelsChanged is published when the purchase list is replaced
type PurchasedTravelsChanged struct {
	PurchasedTravels []travel.PurchasedTravelView `json:"purchasedTravels"`
}

// EventType implements Event
func (PurchasedTravelsChanged) EventType() string { return TypePurchasedTravelsChanged }

// PurchasedTravelAdded is published when a single purchase is prepended
type PurchasedTravelAdded struct {
	PurchasedTravel travel.PurchasedTravelView `json:"purchasedTravel"`
}

// EventType implements Event
func (PurchasedTravelAdded) EventType() string { return TypePurchasedTravelAdded }

// PurchasedTravelUpdated is published when a purchase is replaced in place
type PurchasedTravelUpdated struct {
	PurchasedTravel travel.PurchasedTravelView `json:"purchasedTravel"`
}

// EventType implements Event
func (PurchasedTravelUpdated) EventType() string { return TypePurchasedTravelUpdated }

// RecentSearchesChanged is published when the recent-search list is replaced
type RecentSearchesChanged struct {
	RecentSearches []travel.SearchCriteriaView `json:"recentSearches"`
}

// EventType implements Event
func (RecentSearchesChanged) EventType() string { return TypeRecentSearchesChanged }

// RecentSearchAdded is published when a single recent search is prepended
type RecentSearchAdded struct {
	RecentSearch travel.SearchCriteriaView `json:"recentSearch"`
}

// EventType implements Event
func (RecentSearchAdded) EventType() string { return TypeRecentSearchAdded }

// LastMinuteDealsChanged is published when the deal list is replaced,
// empty replacements included.
type LastMinuteDealsChanged struct {
	LastMinuteDeals []travel.LastMinuteDeal `json:"lastMinuteDeals"`
}

// EventType implements Event
func (LastMinuteDealsChanged) EventType() string { return TypeLastMinuteDealsChanged }

// LastMinuteDealsAdded is published with only the previously unseen
// subset of an incoming deal batch.
type LastMinuteDealsAdded struct {
	LastMinuteDeals []travel.LastMinuteDeal `json:"lastMinuteDeals"`
}

// EventType implements Event
func (LastMinuteDealsAdded) EventType() string { return TypeLastMinuteDealsAdded }

// TravelStatusChanged is published when a travel loading flag changes
type TravelStatusChanged struct {
	Key   travel.StatusKey `json:"key"`
	Value bool             `json:"value"`
}

// EventType implements Event
func (TravelStatusChanged) EventType() string { return TypeTravelStatusChanged }
