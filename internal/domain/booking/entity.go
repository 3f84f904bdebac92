package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

// StatusConfirmed is the only reachable terminal status; there is no
// cancellation or refund transition in the current model.
const StatusConfirmed Status = "confirmed"

// Booking is created exactly once at the end of a successful flow and never
// mutated afterwards. userID is nil for anonymous bookings.
type Booking struct {
	id           uuid.UUID
	userID       *uuid.UUID
	listingID    uuid.UUID
	listingTitle string
	guest        GuestDetails
	stay         StayRange
	nights       int
	total        Money
	payment      PaymentRecord
	status       Status
	createdAt    time.Time
}

func newBooking(
	userID *uuid.UUID,
	listingID uuid.UUID,
	listingTitle string,
	guest GuestDetails,
	stay StayRange,
	nightlyRateCents int64,
	payment PaymentRecord,
	now time.Time,
) *Booking {
	return &Booking{
		id:           uuid.New(),
		userID:       userID,
		listingID:    listingID,
		listingTitle: listingTitle,
		guest:        guest,
		stay:         stay,
		nights:       stay.Nights(),
		total:        TotalFor(stay, nightlyRateCents),
		payment:      payment,
		status:       StatusConfirmed,
		createdAt:    now,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	userID *uuid.UUID,
	listingID uuid.UUID,
	listingTitle string,
	guest GuestDetails,
	stay StayRange,
	nights int,
	total Money,
	payment PaymentRecord,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		userID:       userID,
		listingID:    listingID,
		listingTitle: listingTitle,
		guest:        guest,
		stay:         stay,
		nights:       nights,
		total:        total,
		payment:      payment,
		status:       status,
		createdAt:    createdAt,
	}
}

// ReconstructGuestDetails rebuilds the value object from stored fields,
// bypassing step-one validation.
func ReconstructGuestDetails(name, documentNumber, documentImage string) GuestDetails {
	return GuestDetails{name: name, documentNumber: documentNumber, documentImage: documentImage}
}

// ReconstructStayRange rebuilds a stored range without re-validation.
func ReconstructStayRange(start, end time.Time) StayRange {
	return StayRange{start: start, end: end}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() *uuid.UUID     { return b.userID }
func (b *Booking) ListingID() uuid.UUID   { return b.listingID }
func (b *Booking) ListingTitle() string   { return b.listingTitle }
func (b *Booking) Guest() GuestDetails    { return b.guest }
func (b *Booking) Stay() StayRange        { return b.stay }
func (b *Booking) Nights() int            { return b.nights }
func (b *Booking) Total() Money           { return b.total }
func (b *Booking) Payment() PaymentRecord { return b.payment }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID != nil && *b.userID == userID
}
