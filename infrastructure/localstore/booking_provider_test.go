package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/domain/admin"
	"travelbook/domain/auth"
	"travelbook/domain/shared"
	"travelbook/domain/travel"
	"travelbook/infrastructure/kvstore"
	"travelbook/infrastructure/memstore"
	"travelbook/infrastructure/messaging"
	apperrors "travelbook/pkg/errors"
)

type bookingFixture struct {
	offers    *OffersRepository
	purchases *PurchasedTravelsRepository
	booking   *BookingProvider
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	sessions := memstore.NewSessionStore(messaging.NewMemoryBus(zap.NewNop()))
	sessions.SetSession(&auth.Session{Email: "ada@example.com", Name: "Ada"})

	offers := NewOffersRepository(store)
	purchases := NewPurchasedTravelsRepository(NewProfileStore(store, sessions))
	return bookingFixture{
		offers:    offers,
		purchases: purchases,
		booking:   NewBookingProvider(offers, purchases),
	}
}

func (f bookingFixture) addOffer(t *testing.T, from, to string, price float64) *admin.Offer {
	t.Helper()
	offer, err := f.offers.Add(context.Background(), admin.NewOfferDraft(admin.OfferDraftProps{
		From:        from,
		To:          to,
		Date:        time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		Price:       price,
		Airline:     "Lufthansa",
		TravelClass: shared.TravelClassEconomy,
	}))
	require.NoError(t, err)
	return offer
}

func TestBookingProvider_PurchaseTravel(t *testing.T) {
	f := newBookingFixture(t)
	offer := f.addOffer(t, "Berlin", "Lisbon", 199)

	purchased, err := f.booking.PurchaseTravel(context.Background(), offer.ID())
	require.NoError(t, err)

	assert.Equal(t, "Travel from Berlin to Lisbon", purchased.Name())
	assert.Equal(t, offer.ID(), purchased.Info().OfferID())
	assert.Equal(t, 199.0, purchased.Info().Price())
	assert.NotEmpty(t, purchased.ID())

	stored, err := f.purchases.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, purchased.ID(), stored[0].ID())
}

func TestBookingProvider_PurchaseTravelUnknownOffer(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.booking.PurchaseTravel(context.Background(), "missing")

	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsCode(err, "OfferNotFound"))
}

func TestBookingProvider_PurchaseLastMinuteDealUsesSpecialPrice(t *testing.T) {
	f := newBookingFixture(t)
	offer := f.addOffer(t, "Berlin", "Lisbon", 199)

	deal := travel.LastMinuteDeal{
		ID:       "deal-1",
		TravelID: offer.ID(),
		Price:    99,
	}
	purchased, err := f.booking.PurchaseLastMinuteDeal(context.Background(), deal)
	require.NoError(t, err)

	assert.Equal(t, "Last minute deal from Berlin to Lisbon", purchased.Name())
	assert.Equal(t, 99.0, purchased.Info().Price())
	assert.Equal(t, offer.ID(), purchased.Info().OfferID())
}

func TestPurchasedTravelsRepository_FindAllNewestFirst(t *testing.T) {
	f := newBookingFixture(t)
	first := f.addOffer(t, "Berlin", "Lisbon", 100)
	second := f.addOffer(t, "Oslo", "Rome", 200)

	_, err := f.booking.PurchaseTravel(context.Background(), first.ID())
	require.NoError(t, err)
	latest, err := f.booking.PurchaseTravel(context.Background(), second.ID())
	require.NoError(t, err)

	stored, err := f.purchases.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, latest.ID(), stored[0].ID())
}

func TestPurchasedTravelsRepository_UpdateRenames(t *testing.T) {
	f := newBookingFixture(t)
	offer := f.addOffer(t, "Berlin", "Lisbon", 100)

	purchased, err := f.booking.PurchaseTravel(context.Background(), offer.ID())
	require.NoError(t, err)

	purchased.Rename("honeymoon")
	require.NoError(t, f.purchases.Update(context.Background(), purchased))

	reloaded, err := f.purchases.FindByID(context.Background(), purchased.ID())
	require.NoError(t, err)
	assert.Equal(t, "honeymoon", reloaded.Name())
}

func TestPurchasedTravelsRepository_UpdateUnknownID(t *testing.T) {
	f := newBookingFixture(t)

	ghost := travel.RehydratePurchasedTravel(travel.PurchasedTravelProps{ID: "missing"})
	err := f.purchases.Update(context.Background(), ghost)

	assert.True(t, apperrors.IsCode(err, "PurchasedTravelNotFound"))
}
