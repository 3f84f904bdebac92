package queries

import (
	"context"
	"time"

	"tourease/internal/infra"
	"tourease/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listing_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type RatingSummaryView struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Stars   int     `json:"stars"`
}

type ListingReviewsView struct {
	Summary RatingSummaryView `json:"summary"`
	Reviews []*ReviewView     `json:"reviews"`
}

type ReviewQueries interface {
	ListByListing(ctx context.Context, listingID uuid.UUID) (*ListingReviewsView, error)
}

type reviewQueriesImpl struct {
	reviews  ReviewReadStore
	listings ListingReadStore
	ratings  *RatingSummaryProvider
}

func NewReviewQueries(reviews ReviewReadStore, listings ListingReadStore, ratings *RatingSummaryProvider) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, listings: listings, ratings: ratings}
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID) (*ListingReviewsView, error) {
	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	records, err := q.reviews.FindByListing(ctx, listingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	views := make([]*ReviewView, len(records))
	for i := range records {
		var view ReviewView
		if err := copier.Copy(&view, &records[i]); err != nil {
			return nil, errs.Wrap(err, "failed to assemble review view")
		}
		views[i] = &view
	}

	summary, err := q.ratings.SummaryFor(ctx, listingID)
	if err != nil {
		return nil, err
	}

	return &ListingReviewsView{
		Summary: RatingSummaryView{Average: summary.Average, Count: summary.Count, Stars: summary.Stars()},
		Reviews: views,
	}, nil
}
