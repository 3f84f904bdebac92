//go:build unit

package booking_test

import (
	"testing"

	"tourease/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardInput(number string) booking.PaymentInput {
	return booking.PaymentInput{
		Method:         "card",
		CardNumber:     number,
		CardholderName: "Asha Rao",
		CardExpiry:     "12/27",
		CardCVV:        "123",
	}
}

func TestNormalizeCardPayment(t *testing.T) {
	t.Run("valid card keeps only the last four digits", func(t *testing.T) {
		rec, err := booking.NormalizePayment(cardInput("4111 1111 1111 1111"))
		require.NoError(t, err)

		assert.Equal(t, booking.MethodCard, rec.Method)
		require.NotNil(t, rec.Card)
		assert.Equal(t, "1111", rec.Card.Last4)
		assert.Equal(t, "Asha Rao", rec.Card.HolderName)
		assert.Equal(t, "12/27", rec.Card.Expiry)
		assert.Nil(t, rec.UPI)
	})

	t.Run("separators are ignored", func(t *testing.T) {
		rec, err := booking.NormalizePayment(cardInput("4539-1488-0343-6467"))
		require.NoError(t, err)
		assert.Equal(t, "6467", rec.Card.Last4)
	})

	t.Run("luhn failure is rejected", func(t *testing.T) {
		_, err := booking.NormalizePayment(cardInput("4539148803436468"))
		require.ErrorIs(t, err, booking.ErrInvalidCardNumber)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := booking.NormalizePayment(cardInput("41111111111"))
		require.ErrorIs(t, err, booking.ErrInvalidCardNumber)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := booking.NormalizePayment(cardInput("41111111111111111115"))
		require.ErrorIs(t, err, booking.ErrInvalidCardNumber)
	})

	t.Run("missing holder name", func(t *testing.T) {
		in := cardInput("4111111111111111")
		in.CardholderName = "   "
		_, err := booking.NormalizePayment(in)
		require.ErrorIs(t, err, booking.ErrMissingCardholderName)
	})
}

func TestNormalizeUPIPayment(t *testing.T) {
	upi := func(vpa string) booking.PaymentInput {
		return booking.PaymentInput{Method: "upi", VPA: vpa}
	}

	t.Run("local part is masked", func(t *testing.T) {
		rec, err := booking.NormalizePayment(upi("alice@bank"))
		require.NoError(t, err)

		assert.Equal(t, booking.MethodUPI, rec.Method)
		require.NotNil(t, rec.UPI)
		assert.Equal(t, "a***e@bank", rec.UPI.MaskedVPA)
		assert.Nil(t, rec.Card)
	})

	t.Run("short local parts are kept as-is", func(t *testing.T) {
		rec, err := booking.NormalizePayment(upi("ab@bank"))
		require.NoError(t, err)
		assert.Equal(t, "ab@bank", rec.UPI.MaskedVPA)

		rec, err = booking.NormalizePayment(upi("a@bank"))
		require.NoError(t, err)
		assert.Equal(t, "a@bank", rec.UPI.MaskedVPA)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		rec, err := booking.NormalizePayment(upi("  bob@examplebank  "))
		require.NoError(t, err)
		assert.Equal(t, "b*b@examplebank", rec.UPI.MaskedVPA)
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, vpa := range []string{"", "alice", "@bank", "alice@", "alice@b@ank"} {
			_, err := booking.NormalizePayment(upi(vpa))
			assert.ErrorIs(t, err, booking.ErrInvalidPaymentAddress, "vpa=%q", vpa)
		}
	})
}

func TestNormalizeCashPayment(t *testing.T) {
	rec, err := booking.NormalizePayment(booking.PaymentInput{Method: "cash"})
	require.NoError(t, err)

	assert.Equal(t, booking.MethodCash, rec.Method)
	assert.Nil(t, rec.Card)
	assert.Nil(t, rec.UPI)
}

func TestNormalizeUnsupportedMethod(t *testing.T) {
	_, err := booking.NormalizePayment(booking.PaymentInput{Method: "crypto"})
	require.ErrorIs(t, err, booking.ErrUnsupportedMethod)
}
