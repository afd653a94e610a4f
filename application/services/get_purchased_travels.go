package services

import (
	"context"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// GetPurchasedTravelsHandler loads the purchase history into the store
type GetPurchasedTravelsHandler struct {
	purchases ports.PurchasedTravelsRepository
	store     ports.TravelStore
}

// NewGetPurchasedTravelsHandler creates a new handler instance
func NewGetPurchasedTravelsHandler(
	purchases ports.PurchasedTravelsRepository,
	store ports.TravelStore,
) *GetPurchasedTravelsHandler {
	return &GetPurchasedTravelsHandler{purchases: purchases, store: store}
}

// Execute fetches the purchase history and replaces it in the store
func (h *GetPurchasedTravelsHandler) Execute(ctx context.Context, _ commands.GetPurchasedTravelsQuery) ([]travel.PurchasedTravelView, error) {
	h.store.SetStatus(travel.StatusIsLoadingPurchased, true)
	defer h.store.SetStatus(travel.StatusIsLoadingPurchased, false)

	purchased, err := h.purchases.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]travel.PurchasedTravelView, 0, len(purchased))
	for _, p := range purchased {
		views = append(views, travel.ToPurchasedTravelView(p))
	}

	h.store.SetPurchasedTravels(views)
	return views, nil
}
