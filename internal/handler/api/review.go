package api

import (
	"errors"
	"net/http"

	reqdto "tourease/internal/handler/dto/request"
	resdto "tourease/internal/handler/dto/response"
	"tourease/internal/domain/review"
	"tourease/internal/handler/middleware"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

// @Summary List reviews
// @Description List reviews and the rating summary for a listing
// @Tags reviews
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} queries.ListingReviewsView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/reviews [get]
func (h *ReviewHandler) ListByListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	view, err := h.reviewQueries.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Create review
// @Description Post a review for a listing
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.reviewCommands.Create(c.Request.Context(), commands.CreateReviewInput{
		ListingID: listingID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
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
		case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrCommentTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
