package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travelbook/application"
	"travelbook/application/commands"
	"travelbook/pkg/common"
)

// TravelHandler serves search, purchase and deals endpoints
type TravelHandler struct {
	api    *application.API
	logger *zap.Logger
}

// NewTravelHandler creates a new handler instance
func NewTravelHandler(api *application.API, logger *zap.Logger) *TravelHandler {
	return &TravelHandler{api: api, logger: logger}
}

// SearchTravels handles POST /travels/search
func (h *TravelHandler) SearchTravels(w http.ResponseWriter, r *http.Request) {
	var query commands.SearchTravelsQuery
	if err := common.ParseJSONBody(r, &query, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	cards, err := h.api.SearchTravels.Execute(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, cards)
}

// GetRecentSearches handles GET /travels/recent-searches
func (h *TravelHandler) GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	searches, err := h.api.GetRecentSearches.Execute(r.Context(), commands.GetRecentSearchesQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, searches)
}

// GetPurchasedTravels handles GET /travels/purchased
func (h *TravelHandler) GetPurchasedTravels(w http.ResponseWriter, r *http.Request) {
	purchased, err := h.api.GetPurchasedTravels.Execute(r.Context(), commands.GetPurchasedTravelsQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, purchased)
}

// PurchaseTravel handles POST /travels/purchase
func (h *TravelHandler) PurchaseTravel(w http.ResponseWriter, r *http.Request) {
	var cmd commands.PurchaseTravelCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	purchased, err := h.api.PurchaseTravel.Execute(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.logger.Info("travel purchased", zap.String("id", purchased.ID))
	common.RespondJSON(w, http.StatusCreated, purchased)
}

// PurchaseLastMinuteDeal handles POST /deals/purchase
func (h *TravelHandler) PurchaseLastMinuteDeal(w http.ResponseWriter, r *http.Request) {
	var cmd commands.PurchaseLastMinuteDealCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	purchased, err := h.api.PurchaseLastMinuteDeal.Execute(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.logger.Info("last minute deal purchased", zap.String("id", purchased.ID))
	common.RespondJSON(w, http.StatusCreated, purchased)
}

// RenamePurchasedTravel handles PUT /travels/purchased/{id}/name
func (h *TravelHandler) RenamePurchasedTravel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		NewName string `json:"newName"`
	}
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	cmd := commands.RenamePurchasedTravelCommand{
		ID:      chi.URLParam(r, "id"),
		NewName: body.NewName,
	}

	purchased, err := h.api.RenamePurchasedTravel.Execute(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, purchased)
}

// GetLastMinuteDeals handles GET /deals
func (h *TravelHandler) GetLastMinuteDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.api.GetLastMinuteDeals.Execute(r.Context(), commands.GetLastMinuteDealsQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, deals)
}
