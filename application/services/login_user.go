// Package services holds the use-case handlers. Every handler exposes
// Execute so the middleware decorators can wrap it.
package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/auth"
)

// LoginUserHandler signs a registered user in and tracks the login
// progress on the session store.
type LoginUserHandler struct {
	gateway  ports.AuthGateway
	provider ports.SessionProvider
	sessions ports.SessionStore
	logger   *zap.Logger
}

// NewLoginUserHandler creates a new handler instance
func NewLoginUserHandler(
	gateway ports.AuthGateway,
	provider ports.SessionProvider,
	sessions ports.SessionStore,
	logger *zap.Logger,
) *LoginUserHandler {
	return &LoginUserHandler{
		gateway:  gateway,
		provider: provider,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute authenticates the credentials, persists the session and
// publishes it through the store. The loading flag is reset on every
// path out, failures included.
func (h *LoginUserHandler) Execute(ctx context.Context, cmd commands.LoginUserCommand) (*auth.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.sessions.SetStatus(auth.StatusIsLoading, true)
	defer h.sessions.SetStatus(auth.StatusIsLoading, false)

	session, err := h.gateway.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", cmd.Email), zap.Error(err))
		return nil, err
	}

	if err := h.provider.Save(ctx, session); err != nil {
		return nil, err
	}

	h.sessions.SetSession(session)
	h.logger.Info("user logged in", zap.String("email", session.Email))
	return session, nil
}
