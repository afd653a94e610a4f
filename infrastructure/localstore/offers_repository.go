package localstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"travelbook/domain/admin"
	"travelbook/infrastructure/kvstore"
	apperrors "travelbook/pkg/errors"
)

// OffersRepository keeps the offer catalog as one record list in the
// key-value store.
type OffersRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

// NewOffersRepository creates a repository over the given store
func NewOffersRepository(store kvstore.Store) *OffersRepository {
	return &OffersRepository{store: store}
}

// FindAll returns every offer in the catalog
func (r *OffersRepository) FindAll(ctx context.Context) ([]*admin.Offer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	offers := make([]*admin.Offer, 0, len(records))
	for _, record := range records {
		offers = append(offers, offerFromRecord(record))
	}
	return offers, nil
}

// FindByID returns one offer by id
func (r *OffersRepository) FindByID(ctx context.Context, id string) (*admin.Offer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return offerFromRecord(record), nil
		}
	}
	return nil, apperrors.NewOfferNotFoundError(id)
}

// FindByIDs returns the offers that exist for the given ids
func (r *OffersRepository) FindByIDs(ctx context.Context, ids []string) ([]*admin.Offer, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var offers []*admin.Offer
	for _, record := range records {
		if _, ok := wanted[record.ID]; ok {
			offers = append(offers, offerFromRecord(record))
		}
	}
	return offers, nil
}

// Add assigns an id to the draft and persists it
func (r *OffersRepository) Add(ctx context.Context, draft admin.OfferDraft) (*admin.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	offer := admin.RehydrateOffer(admin.OfferProps{
		ID: uuid.NewString(),
		OfferDraftProps: admin.OfferDraftProps{
			From:        draft.From(),
			To:          draft.To(),
			Date:        draft.Date(),
			Price:       draft.Price(),
			Airline:     draft.Airline(),
			TravelClass: draft.TravelClass(),
		},
	})

	records = append(records, offerToRecord(offer))
	if err := r.save(ctx, records); err != nil {
		return nil, err
	}
	return offer, nil
}

// Update replaces the stored record with the same id
func (r *OffersRepository) Update(ctx context.Context, offer *admin.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, record := range records {
		if record.ID == offer.ID() {
			records[i] = offerToRecord(offer)
			return r.save(ctx, records)
		}
	}
	return apperrors.NewOfferNotFoundError(offer.ID())
}

func (r *OffersRepository) load(ctx context.Context) ([]offerRecord, error) {
	raw, ok, err := r.store.Get(ctx, offersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []offerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, apperrors.NewStorageError("decode offers", err)
	}
	return records, nil
}

func (r *OffersRepository) save(ctx context.Context, records []offerRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewStorageError("encode offers", err)
	}
	return r.store.Set(ctx, offersKey, raw)
}
