// Package di wires the application together
package di

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/wire"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"travelbook/application"
	"travelbook/application/processes"
	"travelbook/application/services"
	"travelbook/domain/events"
	"travelbook/infrastructure/config"
	"travelbook/infrastructure/kvstore"
	"travelbook/infrastructure/localstore"
	"travelbook/infrastructure/memstore"
	"travelbook/infrastructure/messaging"
	"travelbook/interfaces/http/rest"
	"travelbook/pkg/auth"
)

const apiRequestsPerMinute = 300

// Container holds all application dependencies
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	Bus                events.Bus
	API                *application.API
	InitProcess        *processes.InitProcess
	InitSessionProcess *processes.InitSessionProcess
	Handler            http.Handler
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideKVStore,
	ProvideBus,
	ProvideSessionStore,
	ProvideTravelStore,
	ProvideDealsStore,
	ProvideOffersRepository,
	ProvideSpecialOffersRepository,
	ProvideProfileStore,
	ProvideTravelsProvider,
	ProvideSessionTokens,
	ProvideRateLimiter,
	ProvideAPIHandlers,
	ProvideAPI,
	ProvideDealsWatch,
	ProvideInitProcess,
	ProvideInitSessionProcess,
	ProvideHandler,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideKVStore selects the key-value storage driver
func ProvideKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		return kvstore.NewFileStore(cfg.StoragePath)
	case config.DriverDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.AWSRegion),
		)
		if err != nil {
			return nil, err
		}
		return kvstore.NewDynamoStore(awsdynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable), nil
	default:
		return kvstore.NewMemoryStore(), nil
	}
}

// ProvideBus creates the in-process event bus
func ProvideBus(logger *zap.Logger) events.Bus {
	return messaging.NewMemoryBus(logger)
}

// ProvideSessionStore creates the reactive session store
func ProvideSessionStore(bus events.Bus) *memstore.SessionStore {
	return memstore.NewSessionStore(bus)
}

// ProvideTravelStore creates the reactive travel store
func ProvideTravelStore(bus events.Bus) *memstore.TravelStore {
	return memstore.NewTravelStore(bus)
}

// ProvideDealsStore creates the reactive deals board store
func ProvideDealsStore(bus events.Bus) *memstore.LastMinuteDealsStore {
	return memstore.NewLastMinuteDealsStore(bus)
}

// ProvideOffersRepository creates the offer catalog repository
func ProvideOffersRepository(store kvstore.Store) *localstore.OffersRepository {
	return localstore.NewOffersRepository(store)
}

// ProvideSpecialOffersRepository creates the special offers repository
func ProvideSpecialOffersRepository(store kvstore.Store) *localstore.SpecialOffersRepository {
	return localstore.NewSpecialOffersRepository(store)
}

// ProvideProfileStore creates the per-user profile store
func ProvideProfileStore(store kvstore.Store, sessionStore *memstore.SessionStore) *localstore.ProfileStore {
	return localstore.NewProfileStore(store, sessionStore)
}

// ProvideTravelsProvider creates the search and deals provider
func ProvideTravelsProvider(
	offers *localstore.OffersRepository,
	specialOffers *localstore.SpecialOffersRepository,
	profiles *localstore.ProfileStore,
) *localstore.TravelsProvider {
	return localstore.NewTravelsProvider(offers, specialOffers, profiles)
}

// ProvideSessionTokens creates the session token codec
func ProvideSessionTokens(cfg *config.Config) *auth.SessionTokens {
	return auth.NewSessionTokens(cfg.SessionSecret, cfg.SessionIssuer, 0)
}

// ProvideRateLimiter creates the per-IP request limiter
func ProvideRateLimiter() *auth.IPRateLimiter {
	return auth.NewIPRateLimiter(apiRequestsPerMinute)
}

// ProvideAPIHandlers builds the persistence adapters and every
// undecorated use-case handler on top of them.
func ProvideAPIHandlers(
	cfg *config.Config,
	store kvstore.Store,
	sessionStore *memstore.SessionStore,
	travelStore *memstore.TravelStore,
	dealsStore *memstore.LastMinuteDealsStore,
	offersRepo *localstore.OffersRepository,
	specialOffersRepo *localstore.SpecialOffersRepository,
	profileStore *localstore.ProfileStore,
	travelsProvider *localstore.TravelsProvider,
	logger *zap.Logger,
) application.APIHandlers {
	authGateway := localstore.NewAuthGateway(store)
	sessionProvider := localstore.NewSessionProvider(store)
	purchasesRepo := localstore.NewPurchasedTravelsRepository(profileStore)
	bookingProvider := localstore.NewBookingProvider(offersRepo, purchasesRepo)

	offersService := services.NewOffersService(offersRepo, logger)
	specialOffersService := services.NewSpecialOffersService(specialOffersRepo, offersRepo, logger)

	return application.APIHandlers{
		LoginUser:              services.NewLoginUserHandler(authGateway, sessionProvider, sessionStore, logger),
		RegisterUser:           services.NewRegisterUserHandler(authGateway, sessionProvider, sessionStore, logger),
		RestoreUser:            services.NewRestoreUserHandler(sessionProvider, sessionStore, logger),
		GetSession:             services.NewGetSessionHandler(sessionStore),
		SearchTravels:          services.NewSearchTravelsHandler(travelsProvider, travelStore, cfg.SearchDelay, logger),
		PurchaseTravel:         services.NewPurchaseTravelHandler(bookingProvider, travelStore, logger),
		PurchaseLastMinuteDeal: services.NewPurchaseLastMinuteDealHandler(bookingProvider, dealsStore, travelStore, logger),
		RenamePurchasedTravel:  services.NewRenamePurchasedTravelHandler(purchasesRepo, travelStore, logger),
		GetPurchasedTravels:    services.NewGetPurchasedTravelsHandler(purchasesRepo, travelStore),
		GetRecentSearches:      services.NewGetRecentSearchesHandler(travelsProvider, travelStore),
		GetLastMinuteDeals:     services.NewGetLastMinuteDealsHandler(travelsProvider, dealsStore, travelStore),
		Offers:                 offersService,
		SpecialOffers:          specialOffersService,
	}
}

// ProvideAPI decorates the handlers into the public API surface
func ProvideAPI(
	handlers application.APIHandlers,
	sessionStore *memstore.SessionStore,
	cfg *config.Config,
) *application.API {
	return application.NewAPI(handlers, sessionStore, cfg.SearchCacheTTL)
}

// ProvideDealsWatch creates the deals polling watch
func ProvideDealsWatch(
	travelsProvider *localstore.TravelsProvider,
	dealsStore *memstore.LastMinuteDealsStore,
	logger *zap.Logger,
) *services.DealsWatch {
	return services.NewDealsWatch(travelsProvider, dealsStore, logger)
}

// ProvideInitProcess creates the startup process
func ProvideInitProcess(
	handlers application.APIHandlers,
	watch *services.DealsWatch,
	cfg *config.Config,
	logger *zap.Logger,
) *processes.InitProcess {
	return processes.NewInitProcess(handlers.RestoreUser, watch, cfg.DealsPollInterval, logger)
}

// ProvideInitSessionProcess creates the session preload process
func ProvideInitSessionProcess(
	bus events.Bus,
	handlers application.APIHandlers,
	logger *zap.Logger,
) *processes.InitSessionProcess {
	return processes.NewInitSessionProcess(
		bus,
		handlers.GetRecentSearches,
		handlers.GetPurchasedTravels,
		handlers.GetLastMinuteDeals,
		logger,
	)
}

// ProvideHandler builds the configured HTTP handler
func ProvideHandler(
	api *application.API,
	tokens *auth.SessionTokens,
	limiter *auth.IPRateLimiter,
	cfg *config.Config,
	logger *zap.Logger,
) http.Handler {
	return rest.NewRouter(api, tokens, limiter, cfg.EnableCORS, logger).Setup()
}
