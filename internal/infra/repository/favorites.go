package repository

import (
	"context"
	"sync"
	"time"

	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"

	"github.com/google/uuid"
)

type FavoriteRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

func NewFavoriteRepository(store kvstore.Store) *FavoriteRepository {
	return &FavoriteRepository{store: store}
}

// Add is idempotent; favoriting an already-favorited listing is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, userID, listingID uuid.UUID, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []FavoriteRecord
	if err := r.store.Load(ctx, kvstore.CollectionFavorites, &records); err != nil {
		return infra.WrapRepoErr("failed to load favorites", err)
	}
	for _, rec := range records {
		if rec.UserID == userID && rec.ListingID == listingID {
			return nil
		}
	}
	records = append(records, FavoriteRecord{UserID: userID, ListingID: listingID, CreatedAt: now})
	if err := r.store.Save(ctx, kvstore.CollectionFavorites, records); err != nil {
		return infra.WrapRepoErr("failed to save favorites", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []FavoriteRecord
	if err := r.store.Load(ctx, kvstore.CollectionFavorites, &records); err != nil {
		return infra.WrapRepoErr("failed to load favorites", err)
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.UserID == userID && rec.ListingID == listingID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return infra.WrapRepoErr("favorite not found", nil, infra.KindNotFound)
	}
	if err := r.store.Save(ctx, kvstore.CollectionFavorites, kept); err != nil {
		return infra.WrapRepoErr("failed to save favorites", err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var records []FavoriteRecord
	if err := r.store.Load(ctx, kvstore.CollectionFavorites, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load favorites", err)
	}
	var ids []uuid.UUID
	for _, rec := range records {
		if rec.UserID == userID {
			ids = append(ids, rec.ListingID)
		}
	}
	return ids, nil
}
