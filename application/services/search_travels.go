package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/travel"
)

// SearchTravelsHandler runs a travel search. The active criteria is
// published before results come back so the UI can reflect what is
// being searched, and an artificial delay keeps the loading states
// observable against the in-memory backend.
type SearchTravelsHandler struct {
	provider ports.TravelsProvider
	store    ports.TravelStore
	delay    time.Duration
	logger   *zap.Logger
}

// NewSearchTravelsHandler creates a new handler instance
func NewSearchTravelsHandler(
	provider ports.TravelsProvider,
	store ports.TravelStore,
	delay time.Duration,
	logger *zap.Logger,
) *SearchTravelsHandler {
	return &SearchTravelsHandler{
		provider: provider,
		store:    store,
		delay:    delay,
		logger:   logger,
	}
}

// Execute validates the query, publishes the criteria, runs the search
// and stores both the resulting cards and the updated recent searches.
// The cards loading flag is reset on every path out.
func (h *SearchTravelsHandler) Execute(ctx context.Context, query commands.SearchTravelsQuery) ([]travel.TravelCard, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	criteria, err := travel.NewSearchCriteria(travel.SearchCriteriaProps{
		From:          query.From,
		To:            query.To,
		TravelClasses: query.TravelClasses,
	}, nil)
	if err != nil {
		return nil, err
	}

	view := travel.ToSearchCriteriaView(criteria)
	h.store.SetSearchCriteria(&view)

	h.store.SetStatus(travel.StatusIsLoadingCards, true)
	defer h.store.SetStatus(travel.StatusIsLoadingCards, false)

	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	result, err := h.provider.SearchTravelCards(ctx, criteria)
	if err != nil {
		return nil, err
	}

	h.store.SetTravelCards(result.TravelCards)
	h.store.SetRecentSearches(result.RecentSearches)

	h.logger.Debug("search completed",
		zap.String("from", query.From),
		zap.String("to", query.To),
		zap.Int("cards", len(result.TravelCards)),
	)
	return result.TravelCards, nil
}
