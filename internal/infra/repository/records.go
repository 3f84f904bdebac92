package repository

import (
	"time"

	"tourease/internal/domain/booking"
	"tourease/internal/domain/listing"
	"tourease/internal/domain/review"
	"tourease/internal/domain/user"

	"github.com/google/uuid"
)

// Stored collection element shapes. These are the JSON documents the kvstore
// persists; converters below map them to and from domain entities.

type AccountRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListingRecord struct {
	ID               uuid.UUID `json:"id"`
	HostID           uuid.UUID `json:"host_id"`
	Title            string    `json:"title"`
	City             string    `json:"city"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Description      string    `json:"description"`
	Images           []string  `json:"images"`
	CreatedAt        time.Time `json:"created_at"`
}

type PaymentRecordDoc struct {
	Method string          `json:"method"`
	Card   *CardDetailsDoc `json:"card,omitempty"`
	UPI    *UPIDetailsDoc  `json:"upi,omitempty"`
}

type CardDetailsDoc struct {
	HolderName string `json:"holder_name"`
	Last4      string `json:"last4"`
	Expiry     string `json:"expiry"`
}

type UPIDetailsDoc struct {
	MaskedVPA string `json:"masked_vpa"`
}

type BookingRecord struct {
	ID             uuid.UUID        `json:"id"`
	UserID         *uuid.UUID       `json:"user_id,omitempty"`
	ListingID      uuid.UUID        `json:"listing_id"`
	ListingTitle   string           `json:"listing_title"`
	GuestName      string           `json:"guest_name"`
	DocumentNumber string           `json:"document_number"`
	DocumentImage  string           `json:"document_image"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	Nights         int              `json:"nights"`
	TotalCents     int64            `json:"total_cents"`
	Payment        PaymentRecordDoc `json:"payment"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

type ReviewRecord struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listing_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type FavoriteRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

func accountToRecord(a *user.Account) AccountRecord {
	return AccountRecord{
		ID:           a.ID(),
		Username:     a.Username().String(),
		DisplayName:  a.DisplayName().String(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		CreatedAt:    a.CreatedAt(),
	}
}

func listingToRecord(l *listing.Listing) ListingRecord {
	return ListingRecord{
		ID:               l.ID(),
		HostID:           l.HostID(),
		Title:            l.Title().String(),
		City:             l.City().String(),
		NightlyRateCents: l.NightlyRate().Cents(),
		Description:      l.Description().String(),
		Images:           l.Images(),
		CreatedAt:        l.CreatedAt(),
	}
}

func bookingToRecord(b *booking.Booking) BookingRecord {
	rec := BookingRecord{
		ID:             b.ID(),
		UserID:         b.UserID(),
		ListingID:      b.ListingID(),
		ListingTitle:   b.ListingTitle(),
		GuestName:      b.Guest().Name(),
		DocumentNumber: b.Guest().DocumentNumber(),
		DocumentImage:  b.Guest().DocumentImage(),
		StartDate:      b.Stay().Start(),
		EndDate:        b.Stay().End(),
		Nights:         b.Nights(),
		TotalCents:     b.Total().Cents(),
		Status:         string(b.Status()),
		CreatedAt:      b.CreatedAt(),
	}
	rec.Payment = PaymentRecordDoc{Method: string(b.Payment().Method)}
	if c := b.Payment().Card; c != nil {
		rec.Payment.Card = &CardDetailsDoc{HolderName: c.HolderName, Last4: c.Last4, Expiry: c.Expiry}
	}
	if u := b.Payment().UPI; u != nil {
		rec.Payment.UPI = &UPIDetailsDoc{MaskedVPA: u.MaskedVPA}
	}
	return rec
}

func reviewToRecord(r *review.Review) ReviewRecord {
	return ReviewRecord{
		ID:         r.ID(),
		ListingID:  r.ListingID(),
		AuthorID:   r.AuthorID(),
		AuthorName: r.AuthorName(),
		Rating:     r.Rating().Value(),
		Comment:    r.Comment().String(),
		CreatedAt:  r.CreatedAt(),
	}
}
