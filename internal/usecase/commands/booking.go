package commands

import (
	"context"
	"sync"
	"time"

	"tourease/internal/domain/booking"
	"tourease/internal/infra"
	"tourease/internal/infra/repository"
	"tourease/internal/pkg/clock"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/queries"

	"github.com/google/uuid"
)

type StartFlowInput struct {
	ListingID uuid.UUID
	// AccountID is nil for anonymous bookings.
	AccountID *uuid.UUID
}

type GuestDetailsInput struct {
	Name           string
	DocumentNumber string
	DocumentImage  string
	StartDate      string
	EndDate        string
}

type ConfirmInput struct {
	Method         string
	CardNumber     string
	CardholderName string
	CardExpiry     string
	CardCVV        string
	VPA            string
}

// FlowView is the step-aware snapshot rendered after every flow mutation.
type FlowView struct {
	ID           uuid.UUID  `json:"id"`
	ListingID    uuid.UUID  `json:"listing_id"`
	ListingTitle string     `json:"listing_title"`
	Step         string     `json:"step"`
	GuestName    string     `json:"guest_name,omitempty"`
	StartDate    string     `json:"start_date,omitempty"`
	EndDate      string     `json:"end_date,omitempty"`
	Nights       int        `json:"nights,omitempty"`
	TotalCents   int64      `json:"total_cents,omitempty"`
	BookingID    *uuid.UUID `json:"booking_id,omitempty"`
}

type BookingWriteStore interface {
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*repository.BookingRecord, error)
}

type BookingCommands interface {
	StartFlow(ctx context.Context, in StartFlowInput) (*FlowView, error)
	SubmitGuestDetails(ctx context.Context, flowID uuid.UUID, in GuestDetailsInput) (*FlowView, error)
	Back(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
	GetFlow(ctx context.Context, flowID uuid.UUID) (*FlowView, error)
	// Confirm runs the simulated payment latency between validation and
	// commit; cancelling ctx during the wait aborts with no booking created.
	Confirm(ctx context.Context, flowID uuid.UUID, in ConfirmInput) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, bookingID, userID uuid.UUID) error
}

// flowRegistry holds in-progress flows in memory; only the final Booking is
// persisted. Entries idle past the TTL are pruned lazily on access.
type flowRegistry struct {
	mu    sync.Mutex
	flows map[uuid.UUID]*booking.Flow
	ttl   time.Duration
}

func newFlowRegistry(ttl time.Duration) *flowRegistry {
	return &flowRegistry{flows: make(map[uuid.UUID]*booking.Flow), ttl: ttl}
}

func (r *flowRegistry) put(f *booking.Flow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flows[f.ID()] = f
}

func (r *flowRegistry) get(id uuid.UUID, now time.Time) (*booking.Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune(now)
	f, ok := r.flows[id]
	return f, ok
}

func (r *flowRegistry) remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.flows, id)
}

func (r *flowRegistry) prune(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, f := range r.flows {
		if now.Sub(f.UpdatedAt()) > r.ttl {
			delete(r.flows, id)
		}
	}
}

type bookingCommandsImpl struct {
	listings queries.ListingReadStore
	accounts queries.AccountReadStore
	bookings BookingWriteStore
	registry *flowRegistry
	clock    clock.Clock
	// Serializes mutations per registry; flows themselves are not
	// concurrency safe.
	flowMu sync.Mutex

	paymentDelay time.Duration
}

func NewBookingCommands(
	listings queries.ListingReadStore,
	accounts queries.AccountReadStore,
	bookings BookingWriteStore,
	clk clock.Clock,
	paymentDelay time.Duration,
	flowTTL time.Duration,
) BookingCommands {
	return &bookingCommandsImpl{
		listings:     listings,
		accounts:     accounts,
		bookings:     bookings,
		registry:     newFlowRegistry(flowTTL),
		clock:        clk,
		paymentDelay: paymentDelay,
	}
}

func (c *bookingCommandsImpl) StartFlow(ctx context.Context, in StartFlowInput) (*FlowView, error) {
	rec, err := c.listings.FindByID(ctx, in.ListingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrListingNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	var authedDisplayName *string
	if in.AccountID != nil {
		account, err := c.accounts.FindByID(ctx, *in.AccountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrAccountNotFound
			}
			return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		authedDisplayName = &account.DisplayName
	}

	flow := booking.NewFlow(rec.ID, rec.Title, rec.NightlyRateCents, in.AccountID, authedDisplayName, c.clock.Now())
	c.registry.put(flow)
	return flowToView(flow), nil
}

func (c *bookingCommandsImpl) SubmitGuestDetails(ctx context.Context, flowID uuid.UUID, in GuestDetailsInput) (*FlowView, error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	flow, ok := c.registry.get(flowID, c.clock.Now())
	if !ok {
		return nil, errs.ErrFlowNotFound
	}

	err := flow.SubmitGuestDetails(booking.GuestDetailsInput{
		Name:           in.Name,
		DocumentNumber: in.DocumentNumber,
		DocumentImage:  in.DocumentImage,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}, c.clock.Now())
	if err != nil {
		return nil, err
	}
	return flowToView(flow), nil
}

func (c *bookingCommandsImpl) Back(ctx context.Context, flowID uuid.UUID) (*FlowView, error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	flow, ok := c.registry.get(flowID, c.clock.Now())
	if !ok {
		return nil, errs.ErrFlowNotFound
	}
	if err := flow.Back(c.clock.Now()); err != nil {
		return nil, err
	}
	return flowToView(flow), nil
}

func (c *bookingCommandsImpl) GetFlow(ctx context.Context, flowID uuid.UUID) (*FlowView, error) {
	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	flow, ok := c.registry.get(flowID, c.clock.Now())
	if !ok {
		return nil, errs.ErrFlowNotFound
	}
	return flowToView(flow), nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, flowID uuid.UUID, in ConfirmInput) (*queries.BookingView, error) {
	c.flowMu.Lock()
	flow, ok := c.registry.get(flowID, c.clock.Now())
	if !ok {
		c.flowMu.Unlock()
		return nil, errs.ErrFlowNotFound
	}

	paymentRec, err := flow.BeginConfirm(booking.PaymentInput{
		Method:         in.Method,
		CardNumber:     in.CardNumber,
		CardholderName: in.CardholderName,
		CardExpiry:     in.CardExpiry,
		CardCVV:        in.CardCVV,
		VPA:            in.VPA,
	})
	c.flowMu.Unlock()
	if err != nil {
		return nil, err
	}

	// Simulated payment round trip; abortable until it elapses. Nothing has
	// committed yet, so an abort leaves the flow on the payment step.
	if c.paymentDelay > 0 {
		timer := time.NewTimer(c.paymentDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, booking.ErrPaymentAborted
		}
	}

	c.flowMu.Lock()
	defer c.flowMu.Unlock()

	b, err := flow.Complete(paymentRec, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.bookings.Create(ctx, b); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	c.registry.remove(flowID)

	rec, err := c.bookings.FindByID(ctx, b.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return queries.ToBookingView(rec)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	rec, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	if rec.UserID == nil || *rec.UserID != userID {
		return errs.ErrNotBookingOwner
	}

	if err := c.bookings.Delete(ctx, bookingID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrBookingNotFound
		}
		return errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return nil
}

func flowToView(f *booking.Flow) *FlowView {
	view := &FlowView{
		ID:           f.ID(),
		ListingID:    f.ListingID(),
		ListingTitle: f.ListingTitle(),
		Step:         string(f.Step()),
	}
	if g := f.Guest(); g != nil {
		view.GuestName = g.Name()
	}
	if s := f.Stay(); s != nil {
		view.StartDate = s.Start().Format(booking.DateLayout)
		view.EndDate = s.End().Format(booking.DateLayout)
	}
	if nights, total, ok := f.Quote(); ok {
		view.Nights = nights
		view.TotalCents = total.Cents()
	}
	if b := f.Booking(); b != nil {
		id := b.ID()
		view.BookingID = &id
	}
	return view
}
