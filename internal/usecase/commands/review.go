package commands

import (
	"context"

	"tourease/internal/domain/review"
	"tourease/internal/infra"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Rating    int
	Comment   string
}

type ReviewWriteStore interface {
	Create(ctx context.Context, rv *review.Review) error
}

type ReviewCommands interface {
	Create(ctx context.Context, in CreateReviewInput) (uuid.UUID, error)
}

type reviewCommandsImpl struct {
	reviews  ReviewWriteStore
	listings queries.ListingReadStore
	accounts queries.AccountReadStore
	ratings  *queries.RatingSummaryProvider
	clock    clock.Clock
}

func NewReviewCommands(
	reviews ReviewWriteStore,
	listings queries.ListingReadStore,
	accounts queries.AccountReadStore,
	ratings *queries.RatingSummaryProvider,
	clk clock.Clock,
) ReviewCommands {
	return &reviewCommandsImpl{
		reviews:  reviews,
		listings: listings,
		accounts: accounts,
		ratings:  ratings,
		clock:    clk,
	}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, in CreateReviewInput) (uuid.UUID, error) {
	if _, err := c.listings.FindByID(ctx, in.ListingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrListingNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	author, err := c.accounts.FindByID(ctx, in.AuthorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.ErrAccountNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	rv, err := review.NewReview(uuid.Nil, in.ListingID, author.ID, author.DisplayName, in.Rating, in.Comment, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.reviews.Create(ctx, rv); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	// The cached aggregate is now stale for this listing.
	c.ratings.Invalidate(in.ListingID)
	return rv.ID(), nil
}
