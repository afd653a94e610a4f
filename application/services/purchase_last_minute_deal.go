package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
	apperrors "travelbook/pkg/errors"
)

// PurchaseLastMinuteDealHandler books a deal from the deals board.
// The deal must still be on the board at purchase time.
type PurchaseLastMinuteDealHandler struct {
	booking ports.BookingProvider
	deals   ports.LastMinuteDealsStore
	store   ports.TravelStore
	logger  *zap.Logger
}

// NewPurchaseLastMinuteDealHandler creates a new handler instance
func NewPurchaseLastMinuteDealHandler(
	booking ports.BookingProvider,
	deals ports.LastMinuteDealsStore,
	store ports.TravelStore,
	logger *zap.Logger,
) *PurchaseLastMinuteDealHandler {
	return &PurchaseLastMinuteDealHandler{
		booking: booking,
		deals:   deals,
		store:   store,
		logger:  logger,
	}
}

// Execute books the deal at its special price and prepends the
// purchase to the store.
func (h *PurchaseLastMinuteDealHandler) Execute(ctx context.Context, cmd commands.PurchaseLastMinuteDealCommand) (travel.PurchasedTravelView, error) {
	if err := cmd.Validate(); err != nil {
		return travel.PurchasedTravelView{}, err
	}

	deal, ok := h.findDeal(cmd.DealID)
	if !ok {
		return travel.PurchasedTravelView{}, apperrors.NewSpecialOfferNotFoundError(cmd.DealID)
	}

	purchased, err := h.booking.PurchaseLastMinuteDeal(ctx, deal)
	if err != nil {
		return travel.PurchasedTravelView{}, err
	}

	view := travel.ToPurchasedTravelView(purchased)
	h.store.AddPurchasedTravel(view)

	h.logger.Info("last minute deal purchased",
		zap.String("dealId", cmd.DealID),
		zap.String("purchaseId", view.ID),
	)
	return view, nil
}

func (h *PurchaseLastMinuteDealHandler) findDeal(id string) (travel.LastMinuteDeal, bool) {
	for _, deal := range h.deals.Deals() {
		if deal.ID == id {
			return deal, true
		}
	}
	return travel.LastMinuteDeal{}, false
}
