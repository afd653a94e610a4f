package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// PurchaseTravelHandler books the offer behind a search result card
type PurchaseTravelHandler struct {
	booking ports.BookingProvider
	store   ports.TravelStore
	logger  *zap.Logger
}

// NewPurchaseTravelHandler creates a new handler instance
func NewPurchaseTravelHandler(
	booking ports.BookingProvider,
	store ports.TravelStore,
	logger *zap.Logger,
) *PurchaseTravelHandler {
	return &PurchaseTravelHandler{booking: booking, store: store, logger: logger}
}

// Execute books the travel and prepends the purchase to the store
func (h *PurchaseTravelHandler) Execute(ctx context.Context, cmd commands.PurchaseTravelCommand) (travel.PurchasedTravelView, error) {
	if err := cmd.Validate(); err != nil {
		return travel.PurchasedTravelView{}, err
	}

	purchased, err := h.booking.PurchaseTravel(ctx, cmd.TravelID)
	if err != nil {
		return travel.PurchasedTravelView{}, err
	}

	view := travel.ToPurchasedTravelView(purchased)
	h.store.AddPurchasedTravel(view)

	h.logger.Info("travel purchased",
		zap.String("travelId", cmd.TravelID),
		zap.String("purchaseId", view.ID),
	)
	return view, nil
}
