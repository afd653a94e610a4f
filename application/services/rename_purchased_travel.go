package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// RenamePurchasedTravelHandler gives a purchase a user-chosen name
type RenamePurchasedTravelHandler struct {
	purchases ports.PurchasedTravelsRepository
	store     ports.TravelStore
	logger    *zap.Logger
}

// NewRenamePurchasedTravelHandler creates a new handler instance
func NewRenamePurchasedTravelHandler(
	purchases ports.PurchasedTravelsRepository,
	store ports.TravelStore,
	logger *zap.Logger,
) *RenamePurchasedTravelHandler {
	return &RenamePurchasedTravelHandler{purchases: purchases, store: store, logger: logger}
}

// Execute renames the purchase, persists it and updates it in the
// store. An unknown id fails before anything is written.
func (h *RenamePurchasedTravelHandler) Execute(ctx context.Context, cmd commands.RenamePurchasedTravelCommand) (travel.PurchasedTravelView, error) {
	if err := cmd.Validate(); err != nil {
		return travel.PurchasedTravelView{}, err
	}

	purchased, err := h.purchases.FindByID(ctx, cmd.ID)
	if err != nil {
		return travel.PurchasedTravelView{}, err
	}

	purchased.Rename(cmd.NewName)
	if err := h.purchases.Update(ctx, purchased); err != nil {
		return travel.PurchasedTravelView{}, err
	}

	view := travel.ToPurchasedTravelView(purchased)
	h.store.UpdatePurchasedTravel(view)

	h.logger.Debug("purchase renamed", zap.String("id", cmd.ID))
	return view, nil
}
