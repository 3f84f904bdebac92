package commands

import (
	"context"
	"time"

	"tourease/internal/infra"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/queries"

	"github.com/google/uuid"
)

type FavoriteWriteStore interface {
	Add(ctx context.Context, userID, listingID uuid.UUID, now time.Time) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type FavoriteCommands interface {
	Add(ctx context.Context, userID, listingID uuid.UUID) error
	Remove(ctx context.Context, userID, listingID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type favoriteCommandsImpl struct {
	favorites FavoriteWriteStore
	listings  queries.ListingReadStore
	clock     clock.Clock
}

func NewFavoriteCommands(favorites FavoriteWriteStore, listings queries.ListingReadStore, clk clock.Clock) FavoriteCommands {
	return &favoriteCommandsImpl{favorites: favorites, listings: listings, clock: clk}
}

func (c *favoriteCommandsImpl) Add(ctx context.Context, userID, listingID uuid.UUID) error {
	if _, err := c.listings.FindByID(ctx, listingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrListingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if err := c.favorites.Add(ctx, userID, listingID, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (c *favoriteCommandsImpl) Remove(ctx context.Context, userID, listingID uuid.UUID) error {
	err := c.favorites.Remove(ctx, userID, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrListingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func (c *favoriteCommandsImpl) List(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := c.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return ids, nil
}
