package ports

import (
	"context"

	"travelbook/domain/auth"
	"travelbook/domain/travel"
)

// AuthGateway authenticates users against the credential store
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*auth.Session, error)
	Register(ctx context.Context, email, password, name string) (*auth.Session, error)
}

// SessionProvider persists the active session between runs
type SessionProvider interface {
	Save(ctx context.Context, session *auth.Session) error
	Restore(ctx context.Context) (*auth.Session, error)
	Clear(ctx context.Context) error
}

// TravelsProvider serves travel searches and the deals board.
// Searching also records the criteria in the user's recent searches.
type TravelsProvider interface {
	SearchTravelCards(ctx context.Context, criteria travel.SearchCriteria) (*travel.SearchResult, error)
	RecentSearches(ctx context.Context) ([]travel.SearchCriteriaView, error)
	GetLastMinuteDeals(ctx context.Context) ([]travel.LastMinuteDeal, error)
}

// BookingProvider turns offers and deals into purchases for the
// signed-in user.
type BookingProvider interface {
	PurchaseTravel(ctx context.Context, travelID string) (*travel.PurchasedTravel, error)
	PurchaseLastMinuteDeal(ctx context.Context, deal travel.LastMinuteDeal) (*travel.PurchasedTravel, error)
}
