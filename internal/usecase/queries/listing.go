package queries

import (
	"context"
	"strings"
	"time"

	"tourease/internal/infra"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingSummaryView struct {
	ID               uuid.UUID `json:"id"`
	HostID           uuid.UUID `json:"host_id"`
	Title            string    `json:"title"`
	City             string    `json:"city"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	CoverImage       string    `json:"cover_image,omitempty"`
	RatingAverage    float64   `json:"rating_average"`
	RatingCount      int       `json:"rating_count"`
	Stars            int       `json:"stars"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListingView struct {
	ID               uuid.UUID `json:"id"`
	HostID           uuid.UUID `json:"host_id"`
	Title            string    `json:"title"`
	City             string    `json:"city"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Description      string    `json:"description"`
	Images           []string  `json:"images"`
	RatingAverage    float64   `json:"rating_average"`
	RatingCount      int       `json:"rating_count"`
	Stars            int       `json:"stars"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.ListingRecord, error)
	All(ctx context.Context) ([]repository.ListingRecord, error)
}

type ListingQueries interface {
	// Search browses all listings, optionally filtered by a free-text query
	// over title and city.
	Search(ctx context.Context, q string) ([]*ListingSummaryView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
}

type listingQueriesImpl struct {
	listings ListingReadStore
	ratings  *RatingSummaryProvider
}

func NewListingQueries(listings ListingReadStore, ratings *RatingSummaryProvider) ListingQueries {
	return &listingQueriesImpl{listings: listings, ratings: ratings}
}

func (s *listingQueriesImpl) Search(ctx context.Context, q string) ([]*ListingSummaryView, error) {
	records, err := s.listings.All(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	needle := strings.ToLower(strings.TrimSpace(q))
	views := make([]*ListingSummaryView, 0, len(records))
	for i := range records {
		rec := &records[i]
		if needle != "" && !matchesListing(rec, needle) {
			continue
		}
		view, err := s.toSummaryView(ctx, rec)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	rec, err := s.listings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	var view ListingView
	if err := copier.Copy(&view, rec); err != nil {
		return nil, errs.Wrap(err, "failed to assemble listing view")
	}

	summary, err := s.ratings.SummaryFor(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	view.RatingAverage = summary.Average
	view.RatingCount = summary.Count
	view.Stars = summary.Stars()
	return &view, nil
}

func (s *listingQueriesImpl) toSummaryView(ctx context.Context, rec *repository.ListingRecord) (*ListingSummaryView, error) {
	var view ListingSummaryView
	if err := copier.Copy(&view, rec); err != nil {
		return nil, errs.Wrap(err, "failed to assemble listing summary")
	}
	if len(rec.Images) > 0 {
		view.CoverImage = rec.Images[0]
	}

	summary, err := s.ratings.SummaryFor(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	view.RatingAverage = summary.Average
	view.RatingCount = summary.Count
	view.Stars = summary.Stars()
	return &view, nil
}

func matchesListing(rec *repository.ListingRecord, needle string) bool {
	return strings.Contains(strings.ToLower(rec.Title), needle) ||
		strings.Contains(strings.ToLower(rec.City), needle)
}
