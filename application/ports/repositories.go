// Package ports defines the interfaces the application layer depends
// on. Infrastructure supplies the implementations; the use cases only
// ever see these contracts.
package ports

import (
	"context"

	"travelbook/domain/admin"
	"travelbook/domain/travel"
)

// OffersRepository manages the offer catalog
type OffersRepository interface {
	FindAll(ctx context.Context) ([]*admin.Offer, error)
	FindByID(ctx context.Context, id string) (*admin.Offer, error)
	// FindByIDs returns the offers that exist for the given ids.
	// Missing ids are simply absent from the result; callers decide
	// whether that is an error.
	FindByIDs(ctx context.Context, ids []string) ([]*admin.Offer, error)
	Add(ctx context.Context, draft admin.OfferDraft) (*admin.Offer, error)
	Update(ctx context.Context, offer *admin.Offer) error
}

// SpecialOffersRepository manages the discounted offers backing the
// last-minute deals board.
type SpecialOffersRepository interface {
	FindAll(ctx context.Context) ([]*admin.SpecialOffer, error)
	FindByID(ctx context.Context, id string) (*admin.SpecialOffer, error)
	Add(ctx context.Context, draft admin.SpecialOfferDraft) (*admin.SpecialOffer, error)
	Update(ctx context.Context, offer *admin.SpecialOffer) error
}

// PurchasedTravelsRepository manages the signed-in user's purchase history
type PurchasedTravelsRepository interface {
	FindAll(ctx context.Context) ([]*travel.PurchasedTravel, error)
	FindByID(ctx context.Context, id string) (*travel.PurchasedTravel, error)
	Add(ctx context.Context, purchased *travel.PurchasedTravel) error
	Update(ctx context.Context, purchased *travel.PurchasedTravel) error
}
