package api

import (
	"errors"
	"net/http"

	reqdto "tourease/internal/handler/dto/request"
	resdto "tourease/internal/handler/dto/response"
	"tourease/internal/handler/middleware"
	"tourease/internal/infra/imageblob"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
	maxUploadBytes  int64
}

func NewListingHandler(
	listingCommands commands.ListingCommands,
	listingQueries queries.ListingQueries,
	maxUploadBytes int64,
) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
		maxUploadBytes:  maxUploadBytes,
	}
}

// @Summary Search listings
// @Description Browse all listings, optionally filtered by a text query over title and city
// @Tags listings
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} queries.ListingSummaryView
// @Router /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	views, err := h.listingQueries.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get listing
// @Description Get listing detail by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} queries.ListingView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), id)
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

// @Summary Create listing
// @Description Create a listing with image uploads (hosts only)
// @Tags listings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param city formData string true "City"
// @Param nightly_rate_cents formData int true "Nightly rate in cents"
// @Param description formData string false "Description"
// @Param images formData file true "Listing images"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	images := make([]string, 0, len(req.Images))
	for _, fh := range req.Images {
		encoded, err := imageblob.Encode(fh, h.maxUploadBytes)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Uploaded image could not be read",
			})
			return
		}
		images = append(images, encoded)
	}

	id, err := h.listingCommands.Create(c.Request.Context(), commands.CreateListingInput{
		HostID:           hostID,
		Title:            req.Title,
		City:             req.City,
		NightlyRateCents: req.NightlyRateCents,
		Description:      req.Description,
		Images:           images,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStoreOperationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete listing
// @Description Delete a listing owned by the authenticated host
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	if err := h.listingCommands.Delete(c.Request.Context(), id, hostID); err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		case errors.Is(err, errs.ErrNotListingOwner):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Listing is owned by another host",
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
