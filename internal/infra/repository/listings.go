package repository

import (
	"context"
	"sync"

	"tourease/internal/domain/listing"
	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"

	"github.com/google/uuid"
)

type ListingRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

func NewListingRepository(store kvstore.Store) *ListingRepository {
	return &ListingRepository{store: store}
}

func (r *ListingRepository) Create(ctx context.Context, l *listing.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []ListingRecord
	if err := r.store.Load(ctx, kvstore.CollectionListings, &records); err != nil {
		return infra.WrapRepoErr("failed to load listings", err)
	}
	records = append(records, listingToRecord(l))
	if err := r.store.Save(ctx, kvstore.CollectionListings, records); err != nil {
		return infra.WrapRepoErr("failed to save listings", err)
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []ListingRecord
	if err := r.store.Load(ctx, kvstore.CollectionListings, &records); err != nil {
		return infra.WrapRepoErr("failed to load listings", err)
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	if err := r.store.Save(ctx, kvstore.CollectionListings, kept); err != nil {
		return infra.WrapRepoErr("failed to save listings", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id uuid.UUID) (*ListingRecord, error) {
	var records []ListingRecord
	if err := r.store.Load(ctx, kvstore.CollectionListings, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load listings", err)
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
}

func (r *ListingRepository) All(ctx context.Context) ([]ListingRecord, error) {
	var records []ListingRecord
	if err := r.store.Load(ctx, kvstore.CollectionListings, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load listings", err)
	}
	return records, nil
}
