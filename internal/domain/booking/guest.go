package booking

import "strings"

// GuestDetails is the accepted, normalized result of the first flow step.
type GuestDetails struct {
	name           string
	documentNumber string
	documentImage  string // self-contained encoded blob
}

type GuestDetailsInput struct {
	Name           string
	DocumentNumber string
	DocumentImage  string
	StartDate      string // calendar date, 2006-01-02
	EndDate        string
}

// NewGuestDetails validates the identity fields of step one.
// authedDisplayName is the display name of the signed-in account, or nil for
// anonymous bookings; when present the guest name must match it exactly.
func NewGuestDetails(name, documentNumber, documentImage string, authedDisplayName *string) (GuestDetails, error) {
	n := strings.TrimSpace(name)
	doc := strings.TrimSpace(documentNumber)
	if n == "" || doc == "" {
		return GuestDetails{}, ErrMissingField
	}
	if documentImage == "" {
		return GuestDetails{}, ErrMissingDocument
	}
	if authedDisplayName != nil && n != *authedDisplayName {
		return GuestDetails{}, ErrIdentityMismatch
	}
	return GuestDetails{
		name:           n,
		documentNumber: doc,
		documentImage:  documentImage,
	}, nil
}

func (g GuestDetails) Name() string           { return g.name }
func (g GuestDetails) DocumentNumber() string { return g.documentNumber }
func (g GuestDetails) DocumentImage() string  { return g.documentImage }
