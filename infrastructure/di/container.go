//go:build !wireinject
// +build !wireinject

package di

import (
	"context"

	"travelbook/infrastructure/config"
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}

	store, err := ProvideKVStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := ProvideBus(logger)
	sessionStore := ProvideSessionStore(bus)
	travelStore := ProvideTravelStore(bus)
	dealsStore := ProvideDealsStore(bus)

	offersRepo := ProvideOffersRepository(store)
	specialOffersRepo := ProvideSpecialOffersRepository(store)
	profileStore := ProvideProfileStore(store, sessionStore)
	travelsProvider := ProvideTravelsProvider(offersRepo, specialOffersRepo, profileStore)

	handlers := ProvideAPIHandlers(cfg, store, sessionStore, travelStore, dealsStore,
		offersRepo, specialOffersRepo, profileStore, travelsProvider, logger)
	api := ProvideAPI(handlers, sessionStore, cfg)

	watch := ProvideDealsWatch(travelsProvider, dealsStore, logger)
	tokens := ProvideSessionTokens(cfg)
	limiter := ProvideRateLimiter()

	return &Container{
		Config:             cfg,
		Logger:             logger,
		Bus:                bus,
		API:                api,
		InitProcess:        ProvideInitProcess(handlers, watch, cfg, logger),
		InitSessionProcess: ProvideInitSessionProcess(bus, handlers, logger),
		Handler:            ProvideHandler(api, tokens, limiter, cfg, logger),
	}, nil
}

// Shutdown releases container resources
func (c *Container) Shutdown() {
	c.InitSessionProcess.Shutdown()
	c.InitProcess.Shutdown()
	_ = c.Logger.Sync()
}
