package ports

import (
	"travelbook/domain/auth"
	"travelbook/domain/travel"
)

// SessionStore is the reactive view of the auth state
type SessionStore interface {
	Session() *auth.Session
	Status() auth.AuthStatus
	SetSession(session *auth.Session)
	SetStatus(key auth.StatusKey, value bool)
}

// TravelStore is the reactive view of searches and purchases
type TravelStore interface {
	SearchCriteria() *travel.SearchCriteriaView
	TravelCards() []travel.TravelCard
	PurchasedTravels() []travel.PurchasedTravelView
	RecentSearches() []travel.SearchCriteriaView
	Status() travel.TravelStatus
	SetSearchCriteria(criteria *travel.SearchCriteriaView)
	SetTravelCards(cards []travel.TravelCard)
	SetPurchasedTravels(purchased []travel.PurchasedTravelView)
	AddPurchasedTravel(purchased travel.PurchasedTravelView)
	UpdatePurchasedTravel(purchased travel.PurchasedTravelView)
	SetRecentSearches(searches []travel.SearchCriteriaView)
	AddRecentSearch(search travel.SearchCriteriaView)
	SetStatus(key travel.StatusKey, value bool)
}

// LastMinuteDealsStore is the reactive view of the deals board
type LastMinuteDealsStore interface {
	Deals() []travel.LastMinuteDeal
	SetDeals(deals []travel.LastMinuteDeal)
	AddDeals(deals []travel.LastMinuteDeal) []travel.LastMinuteDeal
}
