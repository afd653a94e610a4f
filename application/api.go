// Package application assembles the use cases into the public API
// surface. Decorators are applied here, in one place, so every
// consumer sees the same composition.
package application

import (
	"time"

	"travelbook/application/commands"
	"travelbook/application/middleware"
	"travelbook/application/ports"
	"travelbook/application/services"
	"travelbook/domain/auth"
	"travelbook/domain/travel"
)

// API bundles every use case behind its decorated entry point
type API struct {
	LoginUser              middleware.UseCase[commands.LoginUserCommand, *auth.Session]
	RegisterUser           middleware.UseCase[commands.RegisterUserCommand, *auth.Session]
	RestoreUser            middleware.UseCase[commands.RestoreUserCommand, *auth.Session]
	GetSession             middleware.UseCase[commands.GetSessionQuery, *auth.Session]
	SearchTravels          middleware.UseCase[commands.SearchTravelsQuery, []travel.TravelCard]
	PurchaseTravel         middleware.UseCase[commands.PurchaseTravelCommand, travel.PurchasedTravelView]
	PurchaseLastMinuteDeal middleware.UseCase[commands.PurchaseLastMinuteDealCommand, travel.PurchasedTravelView]
	RenamePurchasedTravel  middleware.UseCase[commands.RenamePurchasedTravelCommand, travel.PurchasedTravelView]
	GetPurchasedTravels    middleware.UseCase[commands.GetPurchasedTravelsQuery, []travel.PurchasedTravelView]
	GetRecentSearches      middleware.UseCase[commands.GetRecentSearchesQuery, []travel.SearchCriteriaView]
	GetLastMinuteDeals     middleware.UseCase[commands.GetLastMinuteDealsQuery, []travel.LastMinuteDeal]

	Offers        *services.OffersService
	SpecialOffers *services.SpecialOffersService
}

// APIHandlers carries the undecorated use-case handlers
type APIHandlers struct {
	LoginUser              *services.LoginUserHandler
	RegisterUser           *services.RegisterUserHandler
	RestoreUser            *services.RestoreUserHandler
	GetSession             *services.GetSessionHandler
	SearchTravels          *services.SearchTravelsHandler
	PurchaseTravel         *services.PurchaseTravelHandler
	PurchaseLastMinuteDeal *services.PurchaseLastMinuteDealHandler
	RenamePurchasedTravel  *services.RenamePurchasedTravelHandler
	GetPurchasedTravels    *services.GetPurchasedTravelsHandler
	GetRecentSearches      *services.GetRecentSearchesHandler
	GetLastMinuteDeals     *services.GetLastMinuteDealsHandler
	Offers                 *services.OffersService
	SpecialOffers          *services.SpecialOffersService
}

// NewAPI decorates the handlers: searches are cached by query, and
// everything touching the purchase history requires a session.
func NewAPI(handlers APIHandlers, sessions ports.SessionStore, searchCacheTTL time.Duration) *API {
	return &API{
		LoginUser:    handlers.LoginUser,
		RegisterUser: handlers.RegisterUser,
		RestoreUser:  handlers.RestoreUser,
		GetSession:   handlers.GetSession,

		SearchTravels: middleware.NewQueryCache[commands.SearchTravelsQuery, []travel.TravelCard](
			handlers.SearchTravels, searchCacheTTL,
		),

		PurchaseTravel: middleware.NewRequireAuth[commands.PurchaseTravelCommand, travel.PurchasedTravelView](
			handlers.PurchaseTravel, sessions,
		),
		PurchaseLastMinuteDeal: middleware.NewRequireAuth[commands.PurchaseLastMinuteDealCommand, travel.PurchasedTravelView](
			handlers.PurchaseLastMinuteDeal, sessions,
		),
		RenamePurchasedTravel: middleware.NewRequireAuth[commands.RenamePurchasedTravelCommand, travel.PurchasedTravelView](
			handlers.RenamePurchasedTravel, sessions,
		),
		GetPurchasedTravels: middleware.NewRequireAuth[commands.GetPurchasedTravelsQuery, []travel.PurchasedTravelView](
			handlers.GetPurchasedTravels, sessions,
		),

		GetRecentSearches:  handlers.GetRecentSearches,
		GetLastMinuteDeals: handlers.GetLastMinuteDeals,

		Offers:        handlers.Offers,
		SpecialOffers: handlers.SpecialOffers,
	}
}
