package queries

import (
	"context"
	"time"

	"tourease/internal/domain/review"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/karlseguin/ccache/v3"
)

type ReviewReadStore interface {
	FindByListing(ctx context.Context, listingID uuid.UUID) ([]repository.ReviewRecord, error)
}

// RatingSummaryProvider caches per-listing rating aggregates; review creation
// invalidates the affected entry so stale averages live at most for the TTL.
type RatingSummaryProvider struct {
	reviews ReviewReadStore
	cache   *ccache.Cache[review.Summary]
	ttl     time.Duration
}

func NewRatingSummaryProvider(reviews ReviewReadStore, maxSize int64, ttl time.Duration) *RatingSummaryProvider {
	return &RatingSummaryProvider{
		reviews: reviews,
		cache:   ccache.New(ccache.Configure[review.Summary]().MaxSize(maxSize)),
		ttl:     ttl,
	}
}

func (p *RatingSummaryProvider) SummaryFor(ctx context.Context, listingID uuid.UUID) (review.Summary, error) {
	item, err := p.cache.Fetch(listingID.String(), p.ttl, func() (review.Summary, error) {
		records, err := p.reviews.FindByListing(ctx, listingID)
		if err != nil {
			return review.Summary{}, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		ratings := make([]int, len(records))
		for i, rec := range records {
			ratings[i] = rec.Rating
		}
		return review.Summarize(ratings), nil
	})
	if err != nil {
		return review.Summary{}, err
	}
	return item.Value(), nil
}

func (p *RatingSummaryProvider) Invalidate(listingID uuid.UUID) {
	p.cache.Delete(listingID.String())
}
