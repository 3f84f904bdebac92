//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"tourease/internal/domain/review"
	"tourease/internal/infra/kvstore"
	"tourease/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list by listing in stored order", func(t *testing.T) {
		repo := repository.NewReviewRepository(kvstore.NewMemoryStore())
		listingID := uuid.New()
		authorID := uuid.New()
		base := time.Now()

		first, err := review.NewReview(uuid.Nil, listingID, authorID, "Asha Rao", 5, "First", base)
		require.NoError(t, err)
		second, err := review.NewReview(uuid.Nil, listingID, authorID, "Asha Rao", 3, "Second", base.Add(time.Minute))
		require.NoError(t, err)
		other, err := review.NewReview(uuid.Nil, uuid.New(), authorID, "Asha Rao", 1, "Other listing", base)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, other))

		records, err := repo.FindByListing(ctx, listingID)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "First", records[0].Comment)
		assert.Equal(t, "Second", records[1].Comment)
	})

	t.Run("no reviews yields empty", func(t *testing.T) {
		repo := repository.NewReviewRepository(kvstore.NewMemoryStore())
		records, err := repo.FindByListing(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
