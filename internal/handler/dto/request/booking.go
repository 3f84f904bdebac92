package request

import (
	"mime/multipart"

	"tourease/internal/usecase/commands"

	"github.com/google/uuid"
)

type StartFlowRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}

// GuestDetailsRequest binds the step-one multipart form. The identity
// document arrives as a file part.
type GuestDetailsRequest struct {
	Name           string                `form:"name"`
	DocumentNumber string                `form:"document_number"`
	DocumentImage  *multipart.FileHeader `form:"document_image"`
	StartDate      string                `form:"start_date"`
	EndDate        string                `form:"end_date"`
}

type ConfirmRequest struct {
	Method         string `json:"method" binding:"required"`
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	CardExpiry     string `json:"card_expiry"`
	CardCVV        string `json:"card_cvv"`
	VPA            string `json:"vpa"`
}

func (r ConfirmRequest) ToInput() commands.ConfirmInput {
	return commands.ConfirmInput{
		Method:         r.Method,
		CardNumber:     r.CardNumber,
		CardholderName: r.CardholderName,
		CardExpiry:     r.CardExpiry,
		CardCVV:        r.CardCVV,
		VPA:            r.VPA,
	}
}
