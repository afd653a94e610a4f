// Package handlers exposes the use cases over HTTP
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"travelbook/application"
	"travelbook/application/commands"
	"travelbook/pkg/auth"
	"travelbook/pkg/common"
)

const maxBodyBytes = 1 << 20

// AuthHandler serves login, registration and session lookup
type AuthHandler struct {
	api    *application.API
	tokens *auth.SessionTokens
	logger *zap.Logger
}

// NewAuthHandler creates a new handler instance
func NewAuthHandler(api *application.API, tokens *auth.SessionTokens, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{api: api, tokens: tokens, logger: logger}
}

type sessionResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd commands.LoginUserCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	session, err := h.api.LoginUser.Execute(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	token, err := h.tokens.Issue(session)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, sessionResponse{
		Email: session.Email,
		Name:  session.Name,
		Token: token,
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RegisterUserCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Validation", "invalid request body")
		return
	}

	session, err := h.api.RegisterUser.Execute(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	token, err := h.tokens.Issue(session)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, sessionResponse{
		Email: session.Email,
		Name:  session.Name,
		Token: token,
	})
}

// GetSession handles GET /auth/session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.api.GetSession.Execute(r.Context(), commands.GetSessionQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	if session == nil {
		common.RespondJSON(w, http.StatusOK, nil)
		return
	}
	common.RespondJSON(w, http.StatusOK, sessionResponse{Email: session.Email, Name: session.Name})
}
