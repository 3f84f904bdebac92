package booking

import (
	"time"

	"github.com/google/uuid"
)

type Step string

const (
	StepGuestDetails Step = "collecting_guest_details"
	StepPayment      Step = "collecting_payment"
	StepCompleted    Step = "completed"
)

// DateLayout is the calendar-date wire format for stay ranges.
const DateLayout = "2006-01-02"

// Flow is the three-step booking state machine:
//
//	StepGuestDetails -> StepPayment -> StepCompleted
//
// Back-navigation from StepPayment is allowed and discards nothing. Every
// guard failure leaves the flow on its current step with no partial state.
// Flow is not safe for concurrent use; the owning registry serializes access.
type Flow struct {
	id                uuid.UUID
	listingID         uuid.UUID
	listingTitle      string
	nightlyRateCents  int64
	userID            *uuid.UUID
	authedDisplayName *string
	step              Step
	guest             *GuestDetails
	stay              *StayRange
	booking           *Booking
	createdAt         time.Time
	updatedAt         time.Time
}

func NewFlow(listingID uuid.UUID, listingTitle string, nightlyRateCents int64, userID *uuid.UUID, authedDisplayName *string, now time.Time) *Flow {
	return &Flow{
		id:                uuid.New(),
		listingID:         listingID,
		listingTitle:      listingTitle,
		nightlyRateCents:  nightlyRateCents,
		userID:            userID,
		authedDisplayName: authedDisplayName,
		step:              StepGuestDetails,
		createdAt:         now,
		updatedAt:         now,
	}
}

func (f *Flow) ID() uuid.UUID         { return f.id }
func (f *Flow) ListingID() uuid.UUID  { return f.listingID }
func (f *Flow) ListingTitle() string  { return f.listingTitle }
func (f *Flow) UserID() *uuid.UUID    { return f.userID }
func (f *Flow) Step() Step            { return f.step }
func (f *Flow) CreatedAt() time.Time  { return f.createdAt }
func (f *Flow) UpdatedAt() time.Time  { return f.updatedAt }
func (f *Flow) Booking() *Booking     { return f.booking }

// Guest returns the previously accepted guest details, if any. Retained
// across back-navigation so step one can be re-rendered pre-filled.
func (f *Flow) Guest() *GuestDetails { return f.guest }

func (f *Flow) Stay() *StayRange { return f.stay }

// Quote returns the derived nights and total for the current date range.
// Recomputed on every call; a change to the range invalidates any previously
// shown total by construction.
func (f *Flow) Quote() (nights int, total Money, ok bool) {
	if f.stay == nil {
		return 0, Money{}, false
	}
	return f.stay.Nights(), TotalFor(*f.stay, f.nightlyRateCents), true
}

// SubmitGuestDetails is the StepGuestDetails -> StepPayment transition.
func (f *Flow) SubmitGuestDetails(in GuestDetailsInput, now time.Time) error {
	switch f.step {
	case StepGuestDetails:
	case StepCompleted:
		return ErrFlowCompleted
	default:
		return ErrInvalidStep
	}

	stay, err := parseStayRange(in.StartDate, in.EndDate)
	if err != nil {
		return err
	}

	guest, err := NewGuestDetails(in.Name, in.DocumentNumber, in.DocumentImage, f.authedDisplayName)
	if err != nil {
		return err
	}

	f.guest = &guest
	f.stay = &stay
	f.step = StepPayment
	f.updatedAt = now
	return nil
}

// Back is the StepPayment -> StepGuestDetails transition. All previously
// entered guest-detail fields survive.
func (f *Flow) Back(now time.Time) error {
	switch f.step {
	case StepPayment:
		f.step = StepGuestDetails
		f.updatedAt = now
		return nil
	case StepCompleted:
		return ErrFlowCompleted
	default:
		return ErrInvalidStep
	}
}

// BeginConfirm guards the StepPayment -> StepCompleted transition: the date
// range is re-validated and the payment input normalized. The flow stays on
// StepPayment so a rejected payment can simply be resubmitted.
func (f *Flow) BeginConfirm(in PaymentInput) (PaymentRecord, error) {
	switch f.step {
	case StepPayment:
	case StepCompleted:
		return PaymentRecord{}, ErrFlowCompleted
	default:
		return PaymentRecord{}, ErrInvalidStep
	}
	if f.guest == nil || f.stay == nil {
		return PaymentRecord{}, ErrInvalidStep
	}
	if err := f.stay.Validate(); err != nil {
		return PaymentRecord{}, err
	}
	return NormalizePayment(in)
}

// Complete finishes the transition started by BeginConfirm and yields the
// one Booking record of this flow. The caller runs the simulated payment
// latency between the two calls so it can be aborted before anything commits.
func (f *Flow) Complete(rec PaymentRecord, now time.Time) (*Booking, error) {
	if f.step == StepCompleted {
		return nil, ErrFlowCompleted
	}
	if f.step != StepPayment || f.guest == nil || f.stay == nil {
		return nil, ErrInvalidStep
	}

	b := newBooking(f.userID, f.listingID, f.listingTitle, *f.guest, *f.stay, f.nightlyRateCents, rec, now)
	f.booking = b
	f.step = StepCompleted
	f.updatedAt = now
	return b, nil
}

func parseStayRange(startDate, endDate string) (StayRange, error) {
	if startDate == "" || endDate == "" {
		return StayRange{}, ErrInvalidDateRange
	}
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return StayRange{}, ErrInvalidDateRange
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return StayRange{}, ErrInvalidDateRange
	}
	return NewStayRange(start, end)
}
