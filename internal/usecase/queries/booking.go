package queries

import (
	"context"
	"time"

	"tourease/internal/infra"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentView struct {
	Method string           `json:"method"`
	Card   *CardDetailsView `json:"card,omitempty"`
	UPI    *UPIDetailsView  `json:"upi,omitempty"`
}

type CardDetailsView struct {
	HolderName string `json:"holder_name"`
	Last4      string `json:"last4"`
	Expiry     string `json:"expiry"`
}

type UPIDetailsView struct {
	MaskedVPA string `json:"masked_vpa"`
}

// BookingView deliberately omits the identity-document image; it is stored
// but only surfaced through the owner's booking detail, never in lists.
type BookingView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	ListingID      uuid.UUID  `json:"listing_id"`
	ListingTitle   string     `json:"listing_title"`
	GuestName      string     `json:"guest_name"`
	DocumentNumber string     `json:"document_number"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        time.Time  `json:"end_date"`
	Nights         int        `json:"nights"`
	TotalCents     int64      `json:"total_cents"`
	Payment        PaymentView `json:"payment"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*repository.BookingRecord, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]repository.BookingRecord, error)
}

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	// GetOwned returns the booking only to its owning user.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	records, err := q.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	views := make([]*BookingView, len(records))
	for i := range records {
		view, err := ToBookingView(&records[i])
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetOwned(ctx context.Context, id, userID uuid.UUID) (*BookingView, error) {
	rec, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if rec.UserID == nil || *rec.UserID != userID {
		return nil, errs.ErrNotBookingOwner
	}
	return ToBookingView(rec)
}

func ToBookingView(rec *repository.BookingRecord) (*BookingView, error) {
	var view BookingView
	if err := copier.Copy(&view, rec); err != nil {
		return nil, errs.Wrap(err, "failed to assemble booking view")
	}
	return &view, nil
}
