package booking

import "strings"

type Method string

const (
	MethodCard Method = "card"
	MethodUPI  Method = "upi"
	MethodCash Method = "cash"
)

func NewMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCard, MethodUPI, MethodCash:
		return Method(s), nil
	default:
		return "", ErrUnsupportedMethod
	}
}

const (
	minCardDigits = 12
	maxCardDigits = 19
	maskRune      = '*'
)

// PaymentInput carries the raw, method-specific fields as entered.
// Sensitive fields (full card number, CVV, raw VPA) never leave this value.
type PaymentInput struct {
	Method         string
	CardNumber     string
	CardholderName string
	CardExpiry     string
	CardCVV        string
	VPA            string
}

// PaymentRecord is the redacted, storable result. Exactly one of Card/UPI is
// set for the corresponding method; cash carries no details.
type PaymentRecord struct {
	Method Method
	Card   *CardDetails
	UPI    *UPIDetails
}

type CardDetails struct {
	HolderName string
	Last4      string
	Expiry     string // as entered; common formats accepted, never rejected
}

type UPIDetails struct {
	MaskedVPA string
}

// NormalizePayment validates the raw input for the selected method and
// produces the redacted record. The CVV is checked for presence of the input
// struct only and is dropped here; it must never appear in the output.
func NormalizePayment(in PaymentInput) (PaymentRecord, error) {
	method, err := NewMethod(in.Method)
	if err != nil {
		return PaymentRecord{}, err
	}

	switch method {
	case MethodCard:
		return normalizeCard(in)
	case MethodUPI:
		return normalizeUPI(in.VPA)
	default:
		return PaymentRecord{Method: MethodCash}, nil
	}
}

func normalizeCard(in PaymentInput) (PaymentRecord, error) {
	digits := stripNonDigits(in.CardNumber)
	if len(digits) < minCardDigits || len(digits) > maxCardDigits || !luhnValid(digits) {
		return PaymentRecord{}, ErrInvalidCardNumber
	}
	holder := strings.TrimSpace(in.CardholderName)
	if holder == "" {
		return PaymentRecord{}, ErrMissingCardholderName
	}
	return PaymentRecord{
		Method: MethodCard,
		Card: &CardDetails{
			HolderName: holder,
			Last4:      digits[len(digits)-4:],
			Expiry:     in.CardExpiry,
		},
	}, nil
}

func normalizeUPI(raw string) (PaymentRecord, error) {
	vpa := strings.TrimSpace(raw)
	local, domain, ok := strings.Cut(vpa, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") {
		return PaymentRecord{}, ErrInvalidPaymentAddress
	}
	return PaymentRecord{
		Method: MethodUPI,
		UPI:    &UPIDetails{MaskedVPA: maskLocalPart(local) + "@" + domain},
	}, nil
}

// maskLocalPart keeps the first and last character and replaces the interior
// with mask characters. Local parts of one or two characters stay as-is.
func maskLocalPart(local string) string {
	runes := []rune(local)
	if len(runes) <= 2 {
		return local
	}
	interior := len(runes) - 2
	return string(runes[0]) + strings.Repeat(string(maskRune), interior) + string(runes[len(runes)-1])
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// luhnValid runs the Luhn checksum: starting from the rightmost digit, double
// every second digit, subtract 9 from doubled values above 9, and require the
// sum to be divisible by 10. An entry-error check, not a security control.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
