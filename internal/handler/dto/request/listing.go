package request

import "mime/multipart"

// CreateListingRequest binds the multipart form; images arrive as file parts
// and are encoded to data URIs before reaching the usecase.
type CreateListingRequest struct {
	Title            string                  `form:"title" binding:"required"`
	City             string                  `form:"city" binding:"required"`
	NightlyRateCents int64                   `form:"nightly_rate_cents" binding:"required,gt=0"`
	Description      string                  `form:"description"`
	Images           []*multipart.FileHeader `form:"images" binding:"required"`
}
