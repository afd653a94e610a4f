package services

import (
	"context"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// GetRecentSearchesHandler loads the recent searches into the store
type GetRecentSearchesHandler struct {
	provider ports.TravelsProvider
	store    ports.TravelStore
}

// NewGetRecentSearchesHandler creates a new handler instance
func NewGetRecentSearchesHandler(
	provider ports.TravelsProvider,
	store ports.TravelStore,
) *GetRecentSearchesHandler {
	return &GetRecentSearchesHandler{provider: provider, store: store}
}

// Execute fetches the recent searches and replaces them in the store
func (h *GetRecentSearchesHandler) Execute(ctx context.Context, _ commands.GetRecentSearchesQuery) ([]travel.SearchCriteriaView, error) {
	h.store.SetStatus(travel.StatusIsLoadingSearches, true)
	defer h.store.SetStatus(travel.StatusIsLoadingSearches, false)

	searches, err := h.provider.RecentSearches(ctx)
	if err != nil {
		return nil, err
	}

	h.store.SetRecentSearches(searches)
	return searches, nil
}
