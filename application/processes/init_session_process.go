package processes

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/services"
	"travelbook/domain/events"
)

// InitSessionProcess preloads user data whenever a session appears.
// It subscribes to session changes and, on sign-in, fetches the recent
// searches, the purchase history and the deals board so the stores are
// warm before the user asks for anything.
type InitSessionProcess struct {
	bus              events.Bus
	recentSearches   *services.GetRecentSearchesHandler
	purchasedTravels *services.GetPurchasedTravelsHandler
	lastMinuteDeals  *services.GetLastMinuteDealsHandler
	logger           *zap.Logger

	unsubscribe events.Unsubscribe
}

// NewInitSessionProcess creates a new process instance
func NewInitSessionProcess(
	bus events.Bus,
	recentSearches *services.GetRecentSearchesHandler,
	purchasedTravels *services.GetPurchasedTravelsHandler,
	lastMinuteDeals *services.GetLastMinuteDealsHandler,
	logger *zap.Logger,
) *InitSessionProcess {
	return &InitSessionProcess{
		bus:              bus,
		recentSearches:   recentSearches,
		purchasedTravels: purchasedTravels,
		lastMinuteDeals:  lastMinuteDeals,
		logger:           logger,
	}
}

// Run registers the session listener. Sign-outs are ignored; only a
// new session triggers the preload.
func (p *InitSessionProcess) Run(ctx context.Context) {
	p.unsubscribe = p.bus.Subscribe(events.TypeSessionChanged, func(e events.Event) {
		changed := e.(events.SessionChanged)
		if changed.Session == nil {
			return
		}
		p.preload(ctx)
	})
}

// Shutdown removes the session listener
func (p *InitSessionProcess) Shutdown() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// preload fetches each dataset independently; one failure does not
// stop the others.
func (p *InitSessionProcess) preload(ctx context.Context) {
	if _, err := p.recentSearches.Execute(ctx, commands.GetRecentSearchesQuery{}); err != nil {
		p.logger.Warn("preloading recent searches failed", zap.Error(err))
	}
	if _, err := p.purchasedTravels.Execute(ctx, commands.GetPurchasedTravelsQuery{}); err != nil {
		p.logger.Warn("preloading purchases failed", zap.Error(err))
	}
	if _, err := p.lastMinuteDeals.Execute(ctx, commands.GetLastMinuteDealsQuery{}); err != nil {
		p.logger.Warn("preloading deals failed", zap.Error(err))
	}
}
