//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tourease/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nightlyRateCents = int64(7500)

func newTestFlow(authedName *string) *booking.Flow {
	var userID *uuid.UUID
	if authedName != nil {
		id := uuid.New()
		userID = &id
	}
	return booking.NewFlow(uuid.New(), "Lakeside Cottage", nightlyRateCents, userID, authedName, time.Now())
}

func validGuestDetails() booking.GuestDetailsInput {
	return booking.GuestDetailsInput{
		Name:           "Asha Rao",
		DocumentNumber: "P1234567",
		DocumentImage:  "data:image/png;base64,aGVsbG8=",
		StartDate:      "2026-03-10",
		EndDate:        "2026-03-13",
	}
}

func TestFlowStartsOnGuestDetails(t *testing.T) {
	f := newTestFlow(nil)

	assert.Equal(t, booking.StepGuestDetails, f.Step())
	assert.Nil(t, f.Guest())
	assert.Nil(t, f.Stay())

	_, _, ok := f.Quote()
	assert.False(t, ok)
}

func TestSubmitGuestDetails(t *testing.T) {
	t.Run("advances to the payment step", func(t *testing.T) {
		f := newTestFlow(nil)
		require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))

		assert.Equal(t, booking.StepPayment, f.Step())
		require.NotNil(t, f.Guest())
		assert.Equal(t, "Asha Rao", f.Guest().Name())

		nights, total, ok := f.Quote()
		require.True(t, ok)
		assert.Equal(t, 3, nights)
		assert.Equal(t, 3*nightlyRateCents, total.Cents())
	})

	t.Run("missing name stays on the first step", func(t *testing.T) {
		f := newTestFlow(nil)
		in := validGuestDetails()
		in.Name = "  "

		require.ErrorIs(t, f.SubmitGuestDetails(in, time.Now()), booking.ErrMissingField)
		assert.Equal(t, booking.StepGuestDetails, f.Step())
		assert.Nil(t, f.Guest())
		assert.Nil(t, f.Stay())
	})

	t.Run("missing document image", func(t *testing.T) {
		f := newTestFlow(nil)
		in := validGuestDetails()
		in.DocumentImage = ""

		require.ErrorIs(t, f.SubmitGuestDetails(in, time.Now()), booking.ErrMissingDocument)
		assert.Equal(t, booking.StepGuestDetails, f.Step())
	})

	t.Run("invalid date range", func(t *testing.T) {
		f := newTestFlow(nil)
		in := validGuestDetails()
		in.EndDate = in.StartDate

		require.ErrorIs(t, f.SubmitGuestDetails(in, time.Now()), booking.ErrInvalidDateRange)
		assert.Equal(t, booking.StepGuestDetails, f.Step())
	})

	t.Run("unparseable dates", func(t *testing.T) {
		f := newTestFlow(nil)
		in := validGuestDetails()
		in.StartDate = "10/03/2026"

		require.ErrorIs(t, f.SubmitGuestDetails(in, time.Now()), booking.ErrInvalidDateRange)
	})

	t.Run("signed-in guest name must match the account", func(t *testing.T) {
		name := "Asha Rao"
		f := newTestFlow(&name)

		in := validGuestDetails()
		in.Name = "Someone Else"
		require.ErrorIs(t, f.SubmitGuestDetails(in, time.Now()), booking.ErrIdentityMismatch)

		in.Name = "Asha Rao"
		require.NoError(t, f.SubmitGuestDetails(in, time.Now()))
	})
}

func TestBack(t *testing.T) {
	t.Run("returns to guest details keeping entered values", func(t *testing.T) {
		f := newTestFlow(nil)
		require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))
		require.NoError(t, f.Back(time.Now()))

		assert.Equal(t, booking.StepGuestDetails, f.Step())
		require.NotNil(t, f.Guest())
		assert.Equal(t, "Asha Rao", f.Guest().Name())
		require.NotNil(t, f.Stay())
	})

	t.Run("not allowed from the first step", func(t *testing.T) {
		f := newTestFlow(nil)
		require.ErrorIs(t, f.Back(time.Now()), booking.ErrInvalidStep)
	})
}

func TestQuoteRecomputesAfterDateChange(t *testing.T) {
	f := newTestFlow(nil)
	require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))

	nights, total, ok := f.Quote()
	require.True(t, ok)
	assert.Equal(t, 3, nights)
	assert.Equal(t, int64(22500), total.Cents())

	require.NoError(t, f.Back(time.Now()))
	in := validGuestDetails()
	in.EndDate = "2026-03-15"
	require.NoError(t, f.SubmitGuestDetails(in, time.Now()))

	nights, total, ok = f.Quote()
	require.True(t, ok)
	assert.Equal(t, 5, nights)
	assert.Equal(t, int64(37500), total.Cents())
}

func TestConfirm(t *testing.T) {
	t.Run("completes the flow and produces one booking", func(t *testing.T) {
		f := newTestFlow(nil)
		require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))

		rec, err := f.BeginConfirm(booking.PaymentInput{Method: "upi", VPA: "bob@examplebank"})
		require.NoError(t, err)
		assert.Equal(t, booking.StepPayment, f.Step())

		b, err := f.Complete(rec, time.Now())
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, booking.StepCompleted, f.Step())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, 3, b.Nights())
		assert.Equal(t, int64(22500), b.Total().Cents())
		require.NotNil(t, b.Payment().UPI)
		assert.Equal(t, "b*b@examplebank", b.Payment().UPI.MaskedVPA)
		assert.Same(t, b, f.Booking())
	})

	t.Run("rejected payment leaves the flow on the payment step", func(t *testing.T) {
		f := newTestFlow(nil)
		require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))

		_, err := f.BeginConfirm(booking.PaymentInput{Method: "card", CardNumber: "1234"})
		require.ErrorIs(t, err, booking.ErrInvalidCardNumber)
		assert.Equal(t, booking.StepPayment, f.Step())
		assert.Nil(t, f.Booking())
	})

	t.Run("not allowed before guest details", func(t *testing.T) {
		f := newTestFlow(nil)
		_, err := f.BeginConfirm(booking.PaymentInput{Method: "cash"})
		require.ErrorIs(t, err, booking.ErrInvalidStep)
	})

	t.Run("completed flow rejects further operations", func(t *testing.T) {
		f := newTestFlow(nil)
		require.NoError(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()))
		rec, err := f.BeginConfirm(booking.PaymentInput{Method: "cash"})
		require.NoError(t, err)
		_, err = f.Complete(rec, time.Now())
		require.NoError(t, err)

		require.ErrorIs(t, f.SubmitGuestDetails(validGuestDetails(), time.Now()), booking.ErrFlowCompleted)
		require.ErrorIs(t, f.Back(time.Now()), booking.ErrFlowCompleted)
		_, err = f.BeginConfirm(booking.PaymentInput{Method: "cash"})
		require.ErrorIs(t, err, booking.ErrFlowCompleted)
		_, err = f.Complete(rec, time.Now())
		require.ErrorIs(t, err, booking.ErrFlowCompleted)
	})
}
