package services

import (
	"context"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/auth"
)

// GetSessionHandler reads the current session from the store
type GetSessionHandler struct {
	sessions ports.SessionStore
}

// NewGetSessionHandler creates a new handler instance
func NewGetSessionHandler(sessions ports.SessionStore) *GetSessionHandler {
	return &GetSessionHandler{sessions: sessions}
}

// Execute returns the current session, or nil when signed out
func (h *GetSessionHandler) Execute(_ context.Context, _ commands.GetSessionQuery) (*auth.Session, error) {
	return h.sessions.Session(), nil
}
