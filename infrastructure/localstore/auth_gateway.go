package localstore

import (
	"context"

	"travelbook/domain/auth"
	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

// AuthGateway authenticates against credential records in the
// key-value store. Credentials are stored as-is; this backend exists
// for the demo, not for safeguarding real accounts.
type AuthGateway struct {
	store kvstore.Store
}

// NewAuthGateway creates a gateway over the given store
func NewAuthGateway(store kvstore.Store) *AuthGateway {
	return &AuthGateway{store: store}
}

// Login matches email and password against the stored credentials.
// Wrong email and wrong password fail identically.
func (g *AuthGateway) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	records, err := g.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Email == email && record.Password == password {
			return &auth.Session{Email: record.Email, Name: record.Name}, nil
		}
	}
	return nil, apperrors.NewInvalidCredentialsError("email or password is incorrect")
}

// Register stores new credentials. An already registered email is
// rejected.
func (g *AuthGateway) Register(ctx context.Context, email, password, name string) (*auth.Session, error) {
	records, err := g.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Email == email {
			return nil, apperrors.NewDuplicateCredentialsError("email is already registered")
		}
	}

	records = append(records, credentialRecord{Email: email, Password: password, Name: name})
	if err := g.save(ctx, records); err != nil {
		return nil, err
	}
	return &auth.Session{Email: email, Name: name}, nil
}

func (g *AuthGateway) load(ctx context.Context) ([]credentialRecord, error) {
	raw, ok, err := g.store.Get(ctx, credentialsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []credentialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.NewStorageError("decode credentials", err)
	}
	return records, nil
}

func (g *AuthGateway) save(ctx context.Context, records []credentialRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorageError("encode credentials", err)
	}
	return g.store.Set(ctx, credentialsKey, raw)
}
