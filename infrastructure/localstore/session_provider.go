package localstore

import (
	"context"

	"travelbook/domain/auth"
	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

// SessionProvider persists the active session in the key-value store
type SessionProvider struct {
	store kvstore.Store
}

// NewSessionProvider creates a provider over the given store
func NewSessionProvider(store kvstore.Store) *SessionProvider {
	return &SessionProvider{store: store}
}

// Save persists the session; a nil session clears it
func (p *SessionProvider) Save(ctx context.Context, session *auth.Session) error {
	if session == nil {
		return p.Clear(ctx)
	}

	raw, err := json.Marshal(sessionRecord{Email: session.Email, Name: session.Name})
	if err != nil {
		return apperrors.NewStorageError("encode session", err)
	}
	return p.store.Set(ctx, sessionKey, raw)
}

// Restore loads the saved session; nil means none was saved
func (p *SessionProvider) Restore(ctx context.Context) (*auth.Session, error) {
	raw, ok, err := p.store.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, apperrors.NewStorageError("decode session", err)
	}
	return &auth.Session{Email: record.Email, Name: record.Name}, nil
}

// Clear removes the saved session
func (p *SessionProvider) Clear(ctx context.Context) error {
	return p.store.Delete(ctx, sessionKey)
}
