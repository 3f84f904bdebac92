package booking

import "errors"

var (
	// Guest-detail validation
	ErrMissingField     = errors.New("guest name and document number are required")
	ErrMissingDocument  = errors.New("identity document image is required")
	ErrInvalidDateRange = errors.New("stay must end strictly after it starts")
	ErrIdentityMismatch = errors.New("guest name must match the signed-in account")

	// Payment validation
	ErrInvalidCardNumber      = errors.New("card number failed validation")
	ErrMissingCardholderName  = errors.New("cardholder name is required")
	ErrInvalidPaymentAddress  = errors.New("virtual payment address is invalid")
	ErrUnsupportedMethod      = errors.New("unsupported payment method")

	// Flow transitions
	ErrInvalidStep    = errors.New("operation not allowed in the current step")
	ErrFlowCompleted  = errors.New("booking flow already completed")
	ErrPaymentAborted = errors.New("payment processing aborted")
)
