//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewQueriesListByListing(t *testing.T) {
	ctx := context.Background()

	t.Run("returns reviews with the aggregate summary", func(t *testing.T) {
		f := newListingQueriesFixture(t)
		id := f.seed(t, "Lakeside Cottage", "Udaipur", 7500)
		addReview(t, f.reviews, id, 5)
		addReview(t, f.reviews, id, 4)

		ratings := queries.NewRatingSummaryProvider(f.reviews, 100, time.Minute)
		q := queries.NewReviewQueries(f.reviews, f.listings, ratings)

		view, err := q.ListByListing(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 4.5, view.Summary.Average)
		assert.Equal(t, 2, view.Summary.Count)
		assert.Equal(t, 5, view.Summary.Stars)
		require.Len(t, view.Reviews, 2)
		assert.Equal(t, "Asha Rao", view.Reviews[0].AuthorName)
		assert.Equal(t, 5, view.Reviews[0].Rating)
	})

	t.Run("unknown listing", func(t *testing.T) {
		f := newListingQueriesFixture(t)
		ratings := queries.NewRatingSummaryProvider(f.reviews, 100, time.Minute)
		q := queries.NewReviewQueries(f.reviews, f.listings, ratings)

		_, err := q.ListByListing(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrListingNotFound)
	})
}
