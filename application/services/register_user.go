package services

import (
	"context"

	"go.uber.org/zap"

	"travelbook/application/commands"
	"travelbook/application/ports"
	"travelbook/domain/auth"
)

// RegisterUserHandler creates a new account and signs it in
type RegisterUserHandler struct {
	gateway  ports.AuthGateway
	provider ports.SessionProvider
	sessions ports.SessionStore
	logger   *zap.Logger
}

// NewRegisterUserHandler creates a new handler instance
func NewRegisterUserHandler(
	gateway ports.AuthGateway,
	provider ports.SessionProvider,
	sessions ports.SessionStore,
	logger *zap.Logger,
) *RegisterUserHandler {
	return &RegisterUserHandler{
		gateway:  gateway,
		provider: provider,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute registers the credentials, persists the new session and
// publishes it through the store.
func (h *RegisterUserHandler) Execute(ctx context.Context, cmd commands.RegisterUserCommand) (*auth.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := h.gateway.Register(ctx, cmd.Email, cmd.Password, cmd.Name)
	if err != nil {
		h.logger.Warn("registration failed", zap.String("email", cmd.Email), zap.Error(err))
		return nil, err
	}

	if err := h.provider.Save(ctx, session); err != nil {
		return nil, err
	}

	h.sessions.SetSession(session)
	h.logger.Info("user registered", zap.String("email", session.Email))
	return session, nil
}
