package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/admin"
	apperrors "travelbook/pkg/errors"
)

// SpecialOffersService manages discounted offers. Every read and write
// verifies that the referenced offers still exist, so a special offer
// never outlives its backing offer unnoticed.
type SpecialOffersService struct {
	specialOffers ports.SpecialOffersRepository
	offers        ports.OffersRepository
	logger        *zap.Logger
}

// NewSpecialOffersService creates a new service instance
func NewSpecialOffersService(
	specialOffers ports.SpecialOffersRepository,
	offers ports.OffersRepository,
	logger *zap.Logger,
) *SpecialOffersService {
	return &SpecialOffersService{
		specialOffers: specialOffers,
		offers:        offers,
		logger:        logger,
	}
}

// referencedOffersMap resolves the backing offer of every given
// special offer in one batch. Any missing reference fails the whole
// call with a referential integrity error naming the missing ids.
func (s *SpecialOffersService) referencedOffersMap(ctx context.Context, specialOffers []*admin.SpecialOffer) (map[string]*admin.Offer, error) {
	ids := make([]string, 0, len(specialOffers))
	seen := make(map[string]struct{}, len(specialOffers))
	for _, so := range specialOffers {
		if _, ok := seen[so.OfferID()]; ok {
			continue
		}
		seen[so.OfferID()] = struct{}{}
		ids = append(ids, so.OfferID())
	}

	found, err := s.offers.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*admin.Offer, len(found))
	for _, offer := range found {
		byID[offer.ID()] = offer
	}

	var missing []string
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewReferentialIntegrityError(
			fmt.Sprintf("special offers reference missing offers: %s", strings.Join(missing, ", ")),
		)
	}

	return byID, nil
}

// GetAll returns every special offer. A single dangling offer
// reference fails the whole call, so callers never see a partial
// catalog.
func (s *SpecialOffersService) GetAll(ctx context.Context) ([]*admin.SpecialOffer, error) {
	specialOffers, err := s.specialOffers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.referencedOffersMap(ctx, specialOffers); err != nil {
		return nil, err
	}
	return specialOffers, nil
}

// GetByID returns one special offer by id. A special offer whose
// backing offer has vanished is a referential integrity failure, not
// a not-found.
func (s *SpecialOffersService) GetByID(ctx context.Context, id string) (*admin.SpecialOffer, error) {
	specialOffer, err := s.specialOffers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.referencedOffersMap(ctx, []*admin.SpecialOffer{specialOffer}); err != nil {
		return nil, err
	}
	return specialOffer, nil
}

// Add validates the command, verifies the referenced offer exists and
// persists the new special offer.
func (s *SpecialOffersService) Add(ctx context.Context, cmd commands.AddSpecialOfferCommand) (*admin.SpecialOffer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft := admin.NewSpecialOfferDraft(admin.SpecialOfferDraftProps{
		OfferID:      cmd.OfferID,
		SpecialPrice: cmd.SpecialPrice,
		Description:  cmd.Description,
	})

	if err := s.verifyReference(ctx, cmd.OfferID); err != nil {
		return nil, err
	}

	specialOffer, err := s.specialOffers.Add(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("special offer added",
		zap.String("id", specialOffer.ID()),
		zap.String("offerId", cmd.OfferID),
	)
	return specialOffer, nil
}

// Update replaces the attributes of an existing special offer after
// verifying the (possibly changed) offer reference.
func (s *SpecialOffersService) Update(ctx context.Context, cmd commands.UpdateSpecialOfferCommand) (*admin.SpecialOffer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	specialOffer, err := s.specialOffers.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := s.verifyReference(ctx, cmd.OfferID); err != nil {
		return nil, err
	}

	specialOffer.Patch(admin.SpecialOfferDraftProps{
		OfferID:      cmd.OfferID,
		SpecialPrice: cmd.SpecialPrice,
		Description:  cmd.Description,
	})

	if err := s.specialOffers.Update(ctx, specialOffer); err != nil {
		return nil, err
	}

	s.logger.Info("special offer updated", zap.String("id", cmd.ID))
	return specialOffer, nil
}

func (s *SpecialOffersService) verifyReference(ctx context.Context, offerID string) error {
	candidate := admin.RehydrateSpecialOffer(admin.SpecialOfferProps{
		SpecialOfferDraftProps: admin.SpecialOfferDraftProps{OfferID: offerID},
	})
	_, err := s.referencedOffersMap(ctx, []*admin.SpecialOffer{candidate})
	return err
}
