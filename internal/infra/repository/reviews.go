package repository

import (
	"context"
	"sync"

	"tourease/internal/domain/review"
	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"

	"github.com/google/uuid"
)

type ReviewRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

func NewReviewRepository(store kvstore.Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []ReviewRecord
	if err := r.store.Load(ctx, kvstore.CollectionReviews, &records); err != nil {
		return infra.WrapRepoErr("failed to load reviews", err)
	}
	records = append(records, reviewToRecord(rv))
	if err := r.store.Save(ctx, kvstore.CollectionReviews, records); err != nil {
		return infra.WrapRepoErr("failed to save reviews", err)
	}
	return nil
}

// FindByListing returns reviews in stored (chronological) order.
func (r *ReviewRepository) FindByListing(ctx context.Context, listingID uuid.UUID) ([]ReviewRecord, error) {
	var records []ReviewRecord
	if err := r.store.Load(ctx, kvstore.CollectionReviews, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load reviews", err)
	}
	var result []ReviewRecord
	for _, rec := range records {
		if rec.ListingID == listingID {
			result = append(result, rec)
		}
	}
	return result, nil
}
