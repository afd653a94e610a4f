package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/domain/admin"
	"travelbook/domain/shared"
	"travelbook/infrastructure/kvstore"
	"travelbook/infrastructure/localstore"
	apperrors "travelbook/pkg/errors"
)

type adminFixture struct {
	store             *kvstore.MemoryStore
	offersRepo        *localstore.OffersRepository
	specialOffersRepo *localstore.SpecialOffersRepository
	offers            *OffersService
	specialOffers     *SpecialOffersService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	store := kvstore.NewMemoryStore()
	offersRepo := localstore.NewOffersRepository(store)
	specialOffersRepo := localstore.NewSpecialOffersRepository(store)
	logger := zap.NewNop()

	return &adminFixture{
		store:             store,
		offersRepo:        offersRepo,
		specialOffersRepo: specialOffersRepo,
		offers:            NewOffersService(offersRepo, logger),
		specialOffers:     NewSpecialOffersService(specialOffersRepo, offersRepo, logger),
	}
}

func (f *adminFixture) addOffer(t *testing.T) *admin.Offer {
	t.Helper()
	offer, err := f.offers.Add(context.Background(), commands.AddOfferCommand{
		From:        "Berlin",
		To:          "Lisbon",
		Date:        time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		Price:       150,
		Airline:     "TAP",
		TravelClass: shared.TravelClassEconomy,
	})
	require.NoError(t, err)
	return offer
}

func TestOffersService_AddAndUpdate(t *testing.T) {
	f := newAdminFixture(t)
	offer := f.addOffer(t)

	updated, err := f.offers.Update(context.Background(), commands.UpdateOfferCommand{
		ID:          offer.ID(),
		From:        "Berlin",
		To:          "Porto",
		Date:        offer.Date(),
		Price:       180,
		Airline:     "TAP",
		TravelClass: shared.TravelClassBusiness,
	})
	require.NoError(t, err)

	assert.Equal(t, offer.ID(), updated.ID())
	assert.Equal(t, "Porto", updated.To())

	reloaded, err := f.offers.GetByID(context.Background(), offer.ID())
	require.NoError(t, err)
	assert.Equal(t, 180.0, reloaded.Price())
}

func TestOffersService_UpdateUnknownID(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.offers.Update(context.Background(), commands.UpdateOfferCommand{
		ID:          "ghost",
		From:        "Berlin",
		To:          "Porto",
		Date:        time.Now(),
		Price:       180,
		Airline:     "TAP",
		TravelClass: shared.TravelClassBusiness,
	})

	assert.True(t, apperrors.IsCode(err, "OfferNotFound"))
}

func TestSpecialOffersService_AddVerifiesReference(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.specialOffers.Add(context.Background(), commands.AddSpecialOfferCommand{
		OfferID:      "ghost",
		SpecialPrice: 75,
		Description:  "late summer escape",
	})

	assert.True(t, apperrors.IsReferentialIntegrity(err))
}

func TestSpecialOffersService_GetByIDWithVanishedOffer(t *testing.T) {
	f := newAdminFixture(t)
	offer := f.addOffer(t)

	created, err := f.specialOffers.Add(context.Background(), commands.AddSpecialOfferCommand{
		OfferID:      offer.ID(),
		SpecialPrice: 75,
		Description:  "late summer escape",
	})
	require.NoError(t, err)

	// Simulate the backing offer vanishing underneath the special
	// offer. The failure must surface as broken referential
	// integrity, not as a plain not-found.
	orphan := admin.RehydrateSpecialOffer(admin.SpecialOfferProps{
		ID: created.ID(),
		SpecialOfferDraftProps: admin.SpecialOfferDraftProps{
			OfferID:      "vanished",
			SpecialPrice: 75,
			Description:  "late summer escape",
		},
	})
	require.NoError(t, f.specialOffersRepo.Update(context.Background(), orphan))

	_, err = f.specialOffers.GetByID(context.Background(), created.ID())
	assert.True(t, apperrors.IsReferentialIntegrity(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestSpecialOffersService_GetByIDUnknownID(t *testing.T) {
	f := newAdminFixture(t)

	_, err := f.specialOffers.GetByID(context.Background(), "ghost")

	assert.True(t, apperrors.IsCode(err, "SpecialOfferNotFound"))
}

func TestSpecialOffersService_GetAllReturnsCatalog(t *testing.T) {
	f := newAdminFixture(t)
	offer := f.addOffer(t)

	created, err := f.specialOffers.Add(context.Background(), commands.AddSpecialOfferCommand{
		OfferID:      offer.ID(),
		SpecialPrice: 75,
		Description:  "late summer escape",
	})
	require.NoError(t, err)

	all, err := f.specialOffers.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, all, 1)
	assert.Equal(t, created.ID(), all[0].ID())
}

func TestSpecialOffersService_GetAllAllOrNothing(t *testing.T) {
	f := newAdminFixture(t)
	offer := f.addOffer(t)

	_, err := f.specialOffers.Add(context.Background(), commands.AddSpecialOfferCommand{
		OfferID:      offer.ID(),
		SpecialPrice: 75,
		Description:  "valid deal",
	})
	require.NoError(t, err)

	// Inject an orphan directly; the service would refuse it.
	_, err = f.specialOffersRepo.Add(context.Background(), admin.NewSpecialOfferDraft(admin.SpecialOfferDraftProps{
		OfferID:      "vanished",
		SpecialPrice: 50,
		Description:  "broken deal",
	}))
	require.NoError(t, err)

	_, err = f.specialOffers.GetAll(context.Background())
	assert.True(t, apperrors.IsReferentialIntegrity(err))
}
