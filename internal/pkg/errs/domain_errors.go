package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("listing is owned by another host")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotBookingOwner  = errors.New("booking is owned by another user")
	ErrFlowNotFound     = errors.New("booking flow not found or expired")
	ErrUnreadableFile   = errors.New("uploaded file could not be read")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
