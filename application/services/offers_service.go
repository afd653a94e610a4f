package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/admin"
)

// OffersService manages the offer catalog
type OffersService struct {
	offers ports.OffersRepository
	logger *zap.Logger
}

// NewOffersService creates a new service instance
func NewOffersService(offers ports.OffersRepository, logger *zap.Logger) *OffersService {
	return &OffersService{offers: offers, logger: logger}
}

// GetAll returns every offer in the catalog
func (s *OffersService) GetAll(ctx context.Context) ([]*admin.Offer, error) {
	return s.offers.FindAll(ctx)
}

// GetByID returns one offer by id
func (s *OffersService) GetByID(ctx context.Context, id string) (*admin.Offer, error) {
	return s.offers.FindByID(ctx, id)
}

// Add validates the command and persists a new offer
func (s *OffersService) Add(ctx context.Context, cmd commands.AddOfferCommand) (*admin.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	draft := admin.NewOfferDraft(admin.OfferDraftProps{
		From:        cmd.From,
		To:          cmd.To,
		Date:        cmd.Date,
		Price:       cmd.Price,
		Airline:     cmd.Airline,
		TravelClass: cmd.TravelClass,
	})

	offer, err := s.offers.Add(ctx, draft)
	if err != nil {
		return nil, err
	}

	s.logger.Info("offer added", zap.String("id", offer.ID()))
	return offer, nil
}

// Update replaces the attributes of an existing offer
func (s *OffersService) Update(ctx context.Context, cmd commands.UpdateOfferCommand) (*admin.Offer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	offer, err := s.offers.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	offer.Patch(admin.OfferDraftProps{
		From:        cmd.From,
		To:          cmd.To,
		Date:        cmd.Date,
		Price:       cmd.Price,
		Airline:     cmd.Airline,
		TravelClass: cmd.TravelClass,
	})

	if err := s.offers.Update(ctx, offer); err != nil {
		return nil, err
	}

	s.logger.Info("offer updated", zap.String("id", offer.ID()))
	return offer, nil
}
