package services

import (
	"context"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// GetLastMinuteDealsHandler replaces the deals board with fresh deals
type GetLastMinuteDealsHandler struct {
	provider ports.TravelsProvider
	deals    ports.LastMinuteDealsStore
	store    ports.TravelStore
}

// NewGetLastMinuteDealsHandler creates a new handler instance
func NewGetLastMinuteDealsHandler(
	provider ports.TravelsProvider,
	deals ports.LastMinuteDealsStore,
	store ports.TravelStore,
) *GetLastMinuteDealsHandler {
	return &GetLastMinuteDealsHandler{
		provider: provider,
		deals:    deals,
		store:    store,
	}
}

// Execute fetches the current deals and replaces the board wholesale.
// An empty fetch still replaces, so stale deals never linger.
func (h *GetLastMinuteDealsHandler) Execute(ctx context.Context, _ commands.GetLastMinuteDealsQuery) ([]travel.LastMinuteDeal, error) {
	h.store.SetStatus(travel.StatusIsLoadingDeals, true)
	defer h.store.SetStatus(travel.StatusIsLoadingDeals, false)

	fresh, err := h.provider.GetLastMinuteDeals(ctx)
	if err != nil {
		return nil, err
	}

	h.deals.SetDeals(fresh)
	return fresh, nil
}
