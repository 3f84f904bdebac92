//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"tourease/internal/domain/listing"
	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"
	"tourease/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListing(t *testing.T, hostID uuid.UUID, title string) *listing.Listing {
	t.Helper()
	tt, err := listing.NewTitle(title)
	require.NoError(t, err)
	city, err := listing.NewCity("Udaipur")
	require.NoError(t, err)
	rate, err := listing.NewNightlyRate(7500)
	require.NoError(t, err)
	desc, err := listing.NewDescription("")
	require.NoError(t, err)
	l, err := listing.NewListing(hostID, tt, city, rate, desc, []string{"data:image/png;base64,x"}, time.Now())
	require.NoError(t, err)
	return l
}

func TestListingRepository(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()

	t.Run("create, find and list", func(t *testing.T) {
		repo := repository.NewListingRepository(kvstore.NewMemoryStore())
		l1 := newListing(t, hostID, "Lakeside Cottage")
		l2 := newListing(t, hostID, "City Loft")

		require.NoError(t, repo.Create(ctx, l1))
		require.NoError(t, repo.Create(ctx, l2))

		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		rec, err := repo.FindByID(ctx, l1.ID())
		require.NoError(t, err)
		assert.Equal(t, "Lakeside Cottage", rec.Title)
		assert.Equal(t, hostID, rec.HostID)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		repo := repository.NewListingRepository(kvstore.NewMemoryStore())
		l1 := newListing(t, hostID, "Lakeside Cottage")
		l2 := newListing(t, hostID, "City Loft")
		require.NoError(t, repo.Create(ctx, l1))
		require.NoError(t, repo.Create(ctx, l2))

		require.NoError(t, repo.Delete(ctx, l1.ID()))

		_, err := repo.FindByID(ctx, l1.ID())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = repo.FindByID(ctx, l2.ID())
		assert.NoError(t, err)
	})

	t.Run("delete of a missing listing fails", func(t *testing.T) {
		repo := repository.NewListingRepository(kvstore.NewMemoryStore())
		err := repo.Delete(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := repository.NewListingRepository(kvstore.NewMemoryStore())
		all, err := repo.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
