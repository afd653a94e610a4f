package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"travelbook/application"
	"travelbook/application/commands"
	"travelbook/domain/admin"
	"travelbook/domain/shared"
	"travelbook/pkg/common"
)

// AdminHandler serves the offer and special offer catalog endpoints
type AdminHandler struct {
	api    *application.API
	logger *zap.Logger
}

// NewAdminHandler creates a new handler instance
func NewAdminHandler(api *application.API, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{api: api, logger: logger}
}

type offerResponse struct {
	ID          string             `json:"id"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Date        time.Time          `json:"date"`
	Price       float64            `json:"price"`
	Airline     string             `json:"airline"`
	TravelClass shared.TravelClass `json:"travelClass"`
}

type specialOfferResponse struct {
	ID           string  `json:"id"`
	OfferID      string  `json:"offerId"`
	SpecialPrice float64 `json:"specialPrice"`
	Description  string  `json:"description"`
}

func toOfferResponse(offer *admin.Offer) offerResponse {
	return offerResponse{
		ID:          offer.ID(),
		From:        offer.From(),
		To:          offer.To(),
		Date:        offer.Date(),
		Price:       offer.Price(),
		Airline:     offer.Airline(),
		TravelClass: offer.TravelClass(),
	}
}

func toSpecialOfferResponse(so *admin.SpecialOffer) specialOfferResponse {
	return specialOfferResponse{
		ID:           so.ID(),
		OfferID:      so.OfferID(),
		SpecialPrice: so.SpecialPrice(),
		Description:  so.Description(),
	}
}

// ListOffers handles GET /admin/offers
func (h *AdminHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.api.Offers.GetAll(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	views := make([]offerResponse, 0, len(offers))
	for _, offer := range offers {
		views = append(views, toOfferResponse(offer))
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetOffer handles GET /admin/offers/{id}
func (h *AdminHandler) GetOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.api.Offers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toOfferResponse(offer))
}

// AddOffer handles POST /admin/offers
func (h *AdminHandler) AddOffer(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AddOfferCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	offer, err := h.api.Offers.Add(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, toOfferResponse(offer))
}

// UpdateOffer handles PUT /admin/offers/{id}
func (h *AdminHandler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UpdateOfferCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}
	cmd.ID = chi.URLParam(r, "id")

	offer, err := h.api.Offers.Update(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toOfferResponse(offer))
}

// ListSpecialOffers handles GET /admin/special-offers
func (h *AdminHandler) ListSpecialOffers(w http.ResponseWriter, r *http.Request) {
	specialOffers, err := h.api.SpecialOffers.GetAll(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	views := make([]specialOfferResponse, 0, len(specialOffers))
	for _, so := range specialOffers {
		views = append(views, toSpecialOfferResponse(so))
	}
	common.RespondJSON(w, http.StatusOK, views)
}

// GetSpecialOffer handles GET /admin/special-offers/{id}
func (h *AdminHandler) GetSpecialOffer(w http.ResponseWriter, r *http.Request) {
	so, err := h.api.SpecialOffers.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toSpecialOfferResponse(so))
}

// AddSpecialOffer handles POST /admin/special-offers
func (h *AdminHandler) AddSpecialOffer(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AddSpecialOfferCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	so, err := h.api.SpecialOffers.Add(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	h.logger.Info("special offer created", zap.String("id", so.ID()))
	common.RespondJSON(w, http.StatusCreated, toSpecialOfferResponse(so))
}

// UpdateSpecialOffer handles PUT /admin/special-offers/{id}
func (h *AdminHandler) UpdateSpecialOffer(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UpdateSpecialOfferCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}
	cmd.ID = chi.URLParam(r, "id")

	so, err := h.api.SpecialOffers.Update(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, toSpecialOfferResponse(so))
}
