package commands

import (
	"context"

	"tourease/internal/domain/listing"
	"tourease/internal/infra"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateListingInput struct {
	HostID           uuid.UUID
	Title            string
	City             string
	NightlyRateCents int64
	Description      string
	// Images are self-contained data URIs, already encoded by the upload
	// collaborator.
	Images []string
}

type ListingWriteStore interface {
	Create(ctx context.Context, l *listing.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ListingCommands interface {
	Create(ctx context.Context, in CreateListingInput) (uuid.UUID, error)
	// Delete removes the listing only when hostID owns it.
	Delete(ctx context.Context, id, hostID uuid.UUID) error
}

type listingCommandsImpl struct {
	writer ListingWriteStore
	reader queries.ListingReadStore
	clock  clock.Clock
}

func NewListingCommands(writer ListingWriteStore, reader queries.ListingReadStore, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{writer: writer, reader: reader, clock: clk}
}

func (c *listingCommandsImpl) Create(ctx context.Context, in CreateListingInput) (uuid.UUID, error) {
	title, err := listing.NewTitle(in.Title)
	if err != nil {
		return uuid.Nil, err
	}
	city, err := listing.NewCity(in.City)
	if err != nil {
		return uuid.Nil, err
	}
	rate, err := listing.NewNightlyRate(in.NightlyRateCents)
	if err != nil {
		return uuid.Nil, err
	}
	desc, err := listing.NewDescription(in.Description)
	if err != nil {
		return uuid.Nil, err
	}

	l, err := listing.NewListing(in.HostID, title, city, rate, desc, in.Images, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.writer.Create(ctx, l); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return l.ID(), nil
}

func (c *listingCommandsImpl) Delete(ctx context.Context, id, hostID uuid.UUID) error {
	rec, err := c.reader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrListingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if rec.HostID != hostID {
		return errs.ErrNotListingOwner
	}

	if err := c.writer.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrListingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}
