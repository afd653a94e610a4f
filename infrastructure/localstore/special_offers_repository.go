package localstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"travelbook/domain/admin"
	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

// SpecialOffersRepository keeps the discounted offers as one record
// list in the key-value store.
type SpecialOffersRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

// NewSpecialOffersRepository creates a repository over the given store
func NewSpecialOffersRepository(store kvstore.Store) *SpecialOffersRepository {
	return &SpecialOffersRepository{store: store}
}

// FindAll returns every special offer
func (r *SpecialOffersRepository) FindAll(ctx context.Context) ([]*admin.SpecialOffer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]*admin.SpecialOffer, 0, len(records))
	for _, record := range records {
		offers = append(offers, specialOfferFromRecord(record))
	}
	return offers, nil
}

// FindByID returns one special offer by id
func (r *SpecialOffersRepository) FindByID(ctx context.Context, id string) (*admin.SpecialOffer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return specialOfferFromRecord(record), nil
		}
	}
	return nil, apperrors.NewSpecialOfferNotFoundError(id)
}

// Add assigns an id to the draft and persists it
func (r *SpecialOffersRepository) Add(ctx context.Context, draft admin.SpecialOfferDraft) (*admin.SpecialOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	offer := admin.RehydrateSpecialOffer(admin.SpecialOfferProps{
		ID: uuid.NewString(),
		SpecialOfferDraftProps: admin.SpecialOfferDraftProps{
			OfferID:      draft.OfferID(),
			SpecialPrice: draft.SpecialPrice(),
			Description:  draft.Description(),
		},
	})

	records = append(records, specialOfferToRecord(offer))
	if err := r.save(ctx, records); err != nil {
		return nil, err
	}
	return offer, nil
}

// Update replaces the stored record with the same id
func (r *SpecialOffersRepository) Update(ctx context.Context, offer *admin.SpecialOffer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, record := range records {
		if record.ID == offer.ID() {
			records[i] = specialOfferToRecord(offer)
			return r.save(ctx, records)
		}
	}
	return apperrors.NewSpecialOfferNotFoundError(offer.ID())
}

func (r *SpecialOffersRepository) load(ctx context.Context) ([]specialOfferRecord, error) {
	raw, ok, err := r.store.Get(ctx, specialOffersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []specialOfferRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.NewStorageError("decode special offers", err)
	}
	return records, nil
}

func (r *SpecialOffersRepository) save(ctx context.Context, records []specialOfferRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorageError("encode special offers", err)
	}
	return r.store.Set(ctx, specialOffersKey, raw)
}
