package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/auth"
)

// RestoreUserHandler rehydrates a session saved by a previous run
type RestoreUserHandler struct {
	provider ports.SessionProvider
	sessions ports.SessionStore
	logger   *zap.Logger
}

// NewRestoreUserHandler creates a new handler instance
func NewRestoreUserHandler(
	provider ports.SessionProvider,
	sessions ports.SessionStore,
	logger *zap.Logger,
) *RestoreUserHandler {
	return &RestoreUserHandler{provider: provider, sessions: sessions, logger: logger}
}

// Execute loads the persisted session, if any, and publishes it
// through the store. No saved session is not an error; the nil session
// is still published so listeners observe the signed-out state.
func (h *RestoreUserHandler) Execute(ctx context.Context, _ commands.RestoreUserCommand) (*auth.Session, error) {
	session, err := h.provider.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		h.sessions.SetSession(nil)
		return nil, nil
	}

	h.sessions.SetSession(session)
	h.logger.Info("session restored", zap.String("email", session.Email))
	return session, nil
}
