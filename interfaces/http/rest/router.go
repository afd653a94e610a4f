// Package rest wires the HTTP surface of the application
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"travelbook/application"
	"travelbook/interfaces/http/rest/handlers"
	"travelbook/interfaces/http/rest/middleware"
	"travelbook/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	api        *application.API
	tokens     *auth.SessionTokens
	limiter    *auth.IPRateLimiter
	enableCORS bool
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	api *application.API,
	tokens *auth.SessionTokens,
	limiter *auth.IPRateLimiter,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		api:        api,
		tokens:     tokens,
		limiter:    limiter,
		enableCORS: enableCORS,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.RateLimit(rt.limiter))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)

	authHandler := handlers.NewAuthHandler(rt.api, rt.tokens, rt.logger)
	travelHandler := handlers.NewTravelHandler(rt.api, rt.logger)
	adminHandler := handlers.NewAdminHandler(rt.api, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Get("/session", authHandler.GetSession)
		})

		// Search and deals are open to anonymous visitors
		r.Post("/travels/search", travelHandler.SearchTravels)
		r.Get("/travels/recent-searches", travelHandler.GetRecentSearches)
		r.Get("/deals", travelHandler.GetLastMinuteDeals)

		// Purchase history requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireToken(rt.tokens, rt.logger))
			r.Get("/travels/purchased", travelHandler.GetPurchasedTravels)
			r.Post("/travels/purchase", travelHandler.PurchaseTravel)
			r.Post("/deals/purchase", travelHandler.PurchaseLastMinuteDeal)
			r.Put("/travels/purchased/{id}/name", travelHandler.RenamePurchasedTravel)
		})

		// Catalog management
		r.Route("/admin", func(r chi.Router) {
			r.Route("/offers", func(r chi.Router) {
				r.Get("/", adminHandler.ListOffers)
				r.Post("/", adminHandler.AddOffer)
				r.Get("/{id}", adminHandler.GetOffer)
				r.Put("/{id}", adminHandler.UpdateOffer)
			})
			r.Route("/special-offers", func(r chi.Router) {
				r.Get("/", adminHandler.ListSpecialOffers)
				r.Post("/", adminHandler.AddSpecialOffer)
				r.Get("/{id}", adminHandler.GetSpecialOffer)
				r.Put("/{id}", adminHandler.UpdateSpecialOffer)
			})
		})
	})

	return router
}

// healthCheck provides a health check endpoint
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
