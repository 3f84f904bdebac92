package repository

import (
	"context"
	"sync"

	"tourease/internal/domain/booking"
	"tourease/internal/infra"
	"tourease/internal/infra/kvstore"

	"github.com/google/uuid"
)

type BookingRepository struct {
	store kvstore.Store
	mu    sync.Mutex
}

func NewBookingRepository(store kvstore.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []BookingRecord
	if err := r.store.Load(ctx, kvstore.CollectionBookings, &records); err != nil {
		return infra.WrapRepoErr("failed to load bookings", err)
	}
	records = append(records, bookingToRecord(b))
	if err := r.store.Save(ctx, kvstore.CollectionBookings, records); err != nil {
		return infra.WrapRepoErr("failed to save bookings", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []BookingRecord
	if err := r.store.Load(ctx, kvstore.CollectionBookings, &records); err != nil {
		return infra.WrapRepoErr("failed to load bookings", err)
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if err := r.store.Save(ctx, kvstore.CollectionBookings, kept); err != nil {
		return infra.WrapRepoErr("failed to save bookings", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*BookingRecord, error) {
	var records []BookingRecord
	if err := r.store.Load(ctx, kvstore.CollectionBookings, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
}

func (r *BookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]BookingRecord, error) {
	var records []BookingRecord
	if err := r.store.Load(ctx, kvstore.CollectionBookings, &records); err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	var result []BookingRecord
	for _, rec := range records {
		if rec.UserID != nil && *rec.UserID == userID {
			result = append(result, rec)
		}
	}
	return result, nil
}
