package localstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// BookingProvider turns offers and deals into purchases and records
// them in the signed-in user's profile.
type BookingProvider struct {
	offers    ports.OffersRepository
	purchases ports.PurchasedTravelsRepository

	now   func() time.Time
	newID func() string
}

// NewBookingProvider creates a provider over the catalog and purchases
func NewBookingProvider(
	offers ports.OffersRepository,
	purchases ports.PurchasedTravelsRepository,
) *BookingProvider {
	return &BookingProvider{
		offers:    offers,
		purchases: purchases,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// PurchaseTravel books the offer at its listed price
func (p *BookingProvider) PurchaseTravel(ctx context.Context, travelID string) (*travel.PurchasedTravel, error) {
	offer, err := p.offers.FindByID(ctx, travelID)
	if err != nil {
		return nil, err
	}

	purchased := travel.RehydratePurchasedTravel(travel.PurchasedTravelProps{
		ID:            p.newID(),
		PurchasedDate: p.now().Format(timeLayout),
		Name:          fmt.Sprintf("Travel from %s to %s", offer.From(), offer.To()),
		Info: travel.RehydrateTravelInfo(travel.TravelInfoProps{
			OfferID:     offer.ID(),
			From:        offer.From(),
			To:          offer.To(),
			Date:        offer.Date(),
			Price:       offer.Price(),
			Airline:     offer.Airline(),
			TravelClass: offer.TravelClass(),
		}),
	})

	if err := p.purchases.Add(ctx, purchased); err != nil {
		return nil, err
	}
	return purchased, nil
}

// PurchaseLastMinuteDeal books the deal's backing offer at the
// special price.
func (p *BookingProvider) PurchaseLastMinuteDeal(ctx context.Context, deal travel.LastMinuteDeal) (*travel.PurchasedTravel, error) {
	offer, err := p.offers.FindByID(ctx, deal.TravelID)
	if err != nil {
		return nil, err
	}

	purchased := travel.RehydratePurchasedTravel(travel.PurchasedTravelProps{
		ID:            p.newID(),
		PurchasedDate: p.now().Format(timeLayout),
		Name:          fmt.Sprintf("Last minute deal from %s to %s", offer.From(), offer.To()),
		Info: travel.RehydrateTravelInfo(travel.TravelInfoProps{
			OfferID:     offer.ID(),
			From:        offer.From(),
			To:          offer.To(),
			Date:        offer.Date(),
			Price:       deal.Price,
			Airline:     offer.Airline(),
			TravelClass: offer.TravelClass(),
		}),
	})

	if err := p.purchases.Add(ctx, purchased); err != nil {
		return nil, err
	}
	return purchased, nil
}
