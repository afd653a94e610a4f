package localstore

import (
	"context"

	"travelbook/application/ports"
	"travelbook/domain/travel"
	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

// maxRecentSearches caps how many searches a profile remembers
const maxRecentSearches = 4

// ProfileStore keeps the per-user profile: recent searches and
// purchases. Every access resolves the profile of the currently
// signed-in user; without a session there is no profile to touch.
type ProfileStore struct {
	store    kvstore.Store
	sessions ports.SessionStore
}

// NewProfileStore creates a store over the given backend
func NewProfileStore(store kvstore.Store, sessions ports.SessionStore) *ProfileStore {
	return &ProfileStore{store: store, sessions: sessions}
}

// RecentSearches returns the profile's recent searches, newest first
func (s *ProfileStore) RecentSearches(ctx context.Context) ([]travel.SearchCriteriaView, error) {
	profile, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	searches := make([]travel.SearchCriteriaView, 0, len(profile.RecentSearches))
	for _, record := range profile.RecentSearches {
		searches = append(searches, searchFromRecord(record))
	}
	return searches, nil
}

// AddRecentSearch prepends a search to the profile. An equal search
// already in the list moves to the front instead of duplicating, and
// the list is capped at its maximum length. The updated list is
// returned.
func (s *ProfileStore) AddRecentSearch(ctx context.Context, view travel.SearchCriteriaView) ([]travel.SearchCriteriaView, error) {
	profile, key, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	incoming := searchToRecord(view)
	kept := make([]searchRecord, 0, len(profile.RecentSearches))
	for _, existing := range profile.RecentSearches {
		if !searchRecordsEqual(existing, incoming) {
			kept = append(kept, existing)
		}
	}

	profile.RecentSearches = append([]searchRecord{incoming}, kept...)
	if len(profile.RecentSearches) > maxRecentSearches {
		profile.RecentSearches = profile.RecentSearches[:maxRecentSearches]
	}

	if err := s.save(ctx, key, profile); err != nil {
		return nil, err
	}

	searches := make([]travel.SearchCriteriaView, 0, len(profile.RecentSearches))
	for _, record := range profile.RecentSearches {
		searches = append(searches, searchFromRecord(record))
	}
	return searches, nil
}

// Purchases returns the profile's purchases in insertion order
func (s *ProfileStore) Purchases(ctx context.Context) ([]*travel.PurchasedTravel, error) {
	profile, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	purchases := make([]*travel.PurchasedTravel, 0, len(profile.Purchases))
	for _, record := range profile.Purchases {
		purchases = append(purchases, purchaseFromRecord(record))
	}
	return purchases, nil
}

// AddPurchase appends a purchase to the profile
func (s *ProfileStore) AddPurchase(ctx context.Context, purchased *travel.PurchasedTravel) error {
	profile, key, err := s.load(ctx)
	if err != nil {
		return err
	}

	profile.Purchases = append(profile.Purchases, purchaseToRecord(purchased))
	return s.save(ctx, key, profile)
}

// UpdatePurchase replaces the purchase with the same id. An unknown
// id is a not-found failure.
func (s *ProfileStore) UpdatePurchase(ctx context.Context, purchased *travel.PurchasedTravel) error {
	profile, key, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i, record := range profile.Purchases {
		if record.ID == purchased.ID() {
			profile.Purchases[i] = purchaseToRecord(purchased)
			return s.save(ctx, key, profile)
		}
	}
	return apperrors.NewPurchasedTravelNotFoundError(purchased.ID())
}

func (s *ProfileStore) load(ctx context.Context) (profileRecord, string, error) {
	session := s.sessions.Session()
	if session == nil {
		return profileRecord{}, "", apperrors.NewUnauthorizedError("no active session")
	}
	key := profileKeyPrefix + session.Email

	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return profileRecord{}, "", err
	}
	if !ok {
		return profileRecord{}, key, nil
	}

	var profile profileRecord
	if err := json.Unmarshal(raw, &profile); err != nil {
		return profileRecord{}, "", apperrors.NewStorageError("decode profile", err)
	}
	return profile, key, nil
}

func (s *ProfileStore) save(ctx context.Context, key string, profile profileRecord) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return apperrors.NewStorageError("encode profile", err)
	}
	return s.store.Set(ctx, key, raw)
}

func searchRecordsEqual(a, b searchRecord) bool {
	if a.From != b.From || a.To != b.To || len(a.TravelClasses) != len(b.TravelClasses) {
		return false
	}
	for i := range a.TravelClasses {
		if a.TravelClasses[i] != b.TravelClasses[i] {
			return false
		}
	}
	return true
}
