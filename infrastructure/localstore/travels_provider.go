package localstore

import (
	"context"
	"fmt"
	"strings"

	"travelbook/application/ports"
	"travelbook/domain/admin"
	"travelbook/domain/shared"
	"travelbook/domain/travel"
	apperrors "travelbook/pkg/errors"
)

// TravelsProvider serves searches and the deals board from the offer
// catalog and records each search in the signed-in user's profile.
type TravelsProvider struct {
	offers        ports.OffersRepository
	specialOffers ports.SpecialOffersRepository
	profiles      *ProfileStore
}

// NewTravelsProvider creates a provider over the catalog and profiles
func NewTravelsProvider(
	offers ports.OffersRepository,
	specialOffers ports.SpecialOffersRepository,
	profiles *ProfileStore,
) *TravelsProvider {
	return &TravelsProvider{offers: offers, specialOffers: specialOffers, profiles: profiles}
}

// SearchTravelCards filters the catalog by the criteria and records
// the search. The returned recent searches already include this one.
func (p *TravelsProvider) SearchTravelCards(ctx context.Context, criteria travel.SearchCriteria) (*travel.SearchResult, error) {
	offers, err := p.offers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[shared.TravelClass]struct{}, len(criteria.TravelClasses()))
	for _, class := range criteria.TravelClasses() {
		wanted[class] = struct{}{}
	}

	var cards []travel.TravelCard
	for _, offer := range offers {
		if offer.From() != criteria.From() || offer.To() != criteria.To() {
			continue
		}
		if _, ok := wanted[offer.TravelClass()]; !ok {
			continue
		}
		cards = append(cards, travel.TravelCard{
			ID:          offer.ID(),
			From:        offer.From(),
			To:          offer.To(),
			Date:        offer.Date().Format(timeLayout),
			Price:       offer.Price(),
			Airline:     offer.Airline(),
			TravelClass: offer.TravelClass(),
		})
	}

	recentSearches, err := p.profiles.AddRecentSearch(ctx, travel.ToSearchCriteriaView(criteria))
	if err != nil {
		return nil, err
	}

	return &travel.SearchResult{TravelCards: cards, RecentSearches: recentSearches}, nil
}

// RecentSearches returns the profile's recent searches
func (p *TravelsProvider) RecentSearches(ctx context.Context) ([]travel.SearchCriteriaView, error) {
	return p.profiles.RecentSearches(ctx)
}

// GetLastMinuteDeals joins every special offer with its backing offer
// and projects the pairs onto the deals board view. A single dangling
// offer reference fails the whole call, so the board never shows a
// partial set.
func (p *TravelsProvider) GetLastMinuteDeals(ctx context.Context) ([]travel.LastMinuteDeal, error) {
	specialOffers, err := p.specialOffers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(specialOffers))
	seen := make(map[string]struct{}, len(specialOffers))
	for _, so := range specialOffers {
		if _, ok := seen[so.OfferID()]; ok {
			continue
		}
		seen[so.OfferID()] = struct{}{}
		ids = append(ids, so.OfferID())
	}

	found, err := p.offers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	offersByID := make(map[string]*admin.Offer, len(found))
	for _, offer := range found {
		offersByID[offer.ID()] = offer
	}

	var missing []string
	for _, id := range ids {
		if _, ok := offersByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewReferentialIntegrityError(
			fmt.Sprintf("special offers reference missing offers: %s", strings.Join(missing, ", ")),
		)
	}

	deals := make([]travel.LastMinuteDeal, 0, len(specialOffers))
	for _, so := range specialOffers {
		offer := offersByID[so.OfferID()]
		deals = append(deals, travel.LastMinuteDeal{
			ID:          so.ID(),
			From:        offer.From(),
			To:          offer.To(),
			Date:        offer.Date().Format(timeLayout),
			Price:       so.SpecialPrice(),
			Airline:     offer.Airline(),
			TravelClass: offer.TravelClass(),
			TravelID:    offer.ID(),
			Description: so.Description(),
		})
	}
	return deals, nil
}
