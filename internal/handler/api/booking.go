package api

import (
	"errors"
	"net/http"

	reqdto "tourease/internal/handler/dto/request"
	"tourease/internal/domain/booking"
	"tourease/internal/handler/middleware"
	"tourease/internal/infra/imageblob"
	"tourease/internal/pkg/errs"
	"tourease/internal/pkg/receipt"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Non-standard status popularized by nginx for client-aborted requests.
const statusClientClosedRequest = 499

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	maxUploadBytes  int64
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	maxUploadBytes int64,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		maxUploadBytes:  maxUploadBytes,
	}
}

// @Summary Start booking flow
// @Description Start a new booking flow for a listing
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.StartFlowRequest true "Start flow request"
// @Success 201 {object} commands.FlowView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/flows [post]
func (h *BookingHandler) StartFlow(c *gin.Context) {
	var req reqdto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var accountID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		accountID = &id
	}

	view, err := h.bookingCommands.StartFlow(c.Request.Context(), commands.StartFlowInput{
		ListingID: req.ListingID,
		AccountID: accountID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get booking flow
// @Description Get the current state of an in-progress booking flow
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} commands.FlowView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/flows/{id} [get]
func (h *BookingHandler) GetFlow(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flow ID format",
		})
		return
	}

	view, err := h.bookingCommands.GetFlow(c.Request.Context(), flowID)
	if err != nil {
		h.flowError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Submit guest details
// @Description Submit step-one guest details with the identity document upload
// @Tags bookings
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Flow ID"
// @Param name formData string true "Guest name"
// @Param document_number formData string true "Identity document number"
// @Param document_image formData file true "Identity document image"
// @Param start_date formData string true "Check-in date (2006-01-02)"
// @Param end_date formData string true "Check-out date (2006-01-02)"
// @Success 200 {object} commands.FlowView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/flows/{id}/guest-details [post]
func (h *BookingHandler) SubmitGuestDetails(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flow ID format",
		})
		return
	}

	var req reqdto.GuestDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var documentImage string
	if req.DocumentImage != nil {
		encoded, err := imageblob.Encode(req.DocumentImage, h.maxUploadBytes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Uploaded document could not be read",
			})
			return
		}
		documentImage = encoded
	}

	view, err := h.bookingCommands.SubmitGuestDetails(c.Request.Context(), flowID, commands.GuestDetailsInput{
		Name:           req.Name,
		DocumentNumber: req.DocumentNumber,
		DocumentImage:  documentImage,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		h.flowError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Go back to guest details
// @Description Return from the payment step to guest details, keeping entered values
// @Tags bookings
// @Produce json
// @Param id path string true "Flow ID"
// @Success 200 {object} commands.FlowView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/flows/{id}/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flow ID format",
		})
		return
	}

	view, err := h.bookingCommands.Back(c.Request.Context(), flowID)
	if err != nil {
		h.flowError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm booking
// @Description Submit payment details and finalize the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Flow ID"
// @Param request body reqdto.ConfirmRequest true "Payment details"
// @Success 201 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/flows/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid flow ID format",
		})
		return
	}

	var req reqdto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Confirm(c.Request.Context(), flowID, req.ToInput())
	if err != nil {
		if errors.Is(err, booking.ErrPaymentAborted) {
			c.Status(statusClientClosedRequest)
			return
		}
		h.flowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List bookings
// @Description List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.BookingView
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Delete booking
// @Description Delete a booking owned by the authenticated user
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking is owned by another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Download booking receipt
// @Description Download the booking confirmation as a PDF
// @Tags bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/receipt [get]
func (h *BookingHandler) Receipt(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetOwned(c.Request.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrNotBookingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Booking is owned by another user",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	data := receipt.Data{
		BookingID:     view.ID.String(),
		ListingTitle:  view.ListingTitle,
		GuestName:     view.GuestName,
		StartDate:     view.StartDate,
		EndDate:       view.EndDate,
		Nights:        view.Nights,
		TotalCents:    view.TotalCents,
		PaymentMethod: view.Payment.Method,
		PaymentDetail: paymentDetail(view.Payment),
		Status:        view.Status,
		CreatedAt:     view.CreatedAt,
	}

	pdfBytes, filename, err := receipt.Build(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func paymentDetail(p queries.PaymentView) string {
	switch {
	case p.Card != nil:
		return "card ending " + p.Card.Last4
	case p.UPI != nil:
		return p.UPI.MaskedVPA
	default:
		return ""
	}
}

func (h *BookingHandler) flowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking flow not found or expired",
		})
	case errors.Is(err, booking.ErrFlowCompleted), errors.Is(err, booking.ErrInvalidStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation not allowed in the current step",
		})
	case errors.Is(err, booking.ErrMissingField),
		errors.Is(err, booking.ErrMissingDocument),
		errors.Is(err, booking.ErrIdentityMismatch),
		errors.Is(err, booking.ErrInvalidDateRange),
		errors.Is(err, booking.ErrInvalidCardNumber),
		errors.Is(err, booking.ErrMissingCardholderName),
		errors.Is(err, booking.ErrInvalidPaymentAddress),
		errors.Is(err, booking.ErrUnsupportedMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
