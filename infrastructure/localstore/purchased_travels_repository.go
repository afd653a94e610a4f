package localstore

import (
	"context"

	"travelbook/domain/travel"
	apperrors "travelbook/pkg/errors"
)

// PurchasedTravelsRepository exposes the profile's purchases through
// the repository port.
type PurchasedTravelsRepository struct {
	profiles *ProfileStore
}

// NewPurchasedTravelsRepository creates a repository over the profile store
func NewPurchasedTravelsRepository(profiles *ProfileStore) *PurchasedTravelsRepository {
	return &PurchasedTravelsRepository{profiles: profiles}
}

// FindAll returns the signed-in user's purchases, newest first
func (r *PurchasedTravelsRepository) FindAll(ctx context.Context) ([]*travel.PurchasedTravel, error) {
	purchases, err := r.profiles.Purchases(ctx)
	if err != nil {
		return nil, err
	}

	// Profiles append purchases in buy order; consumers expect the
	// most recent first.
	for i, j := 0, len(purchases)-1; i < j; i, j = i+1, j-1 {
		purchases[i], purchases[j] = purchases[j], purchases[i]
	}
	return purchases, nil
}

// FindByID returns one purchase by id
func (r *PurchasedTravelsRepository) FindByID(ctx context.Context, id string) (*travel.PurchasedTravel, error) {
	purchases, err := r.profiles.Purchases(ctx)
	if err != nil {
		return nil, err
	}

	for _, purchased := range purchases {
		if purchased.ID() == id {
			return purchased, nil
		}
	}
	return nil, apperrors.NewPurchasedTravelNotFoundError(id)
}

// Add appends a purchase to the profile
func (r *PurchasedTravelsRepository) Add(ctx context.Context, purchased *travel.PurchasedTravel) error {
	return r.profiles.AddPurchase(ctx, purchased)
}

// Update replaces the purchase with the same id
func (r *PurchasedTravelsRepository) Update(ctx context.Context, purchased *travel.PurchasedTravel) error {
	return r.profiles.UpdatePurchase(ctx, purchased)
}
