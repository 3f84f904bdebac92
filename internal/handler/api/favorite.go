package api

import (
	"errors"
	"net/http"

	"tourease/internal/handler/middleware"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteCommands commands.FavoriteCommands
}

func NewFavoriteHandler(favoriteCommands commands.FavoriteCommands) *FavoriteHandler {
	return &FavoriteHandler{favoriteCommands: favoriteCommands}
}

// @Summary List favorites
// @Description List the authenticated user's favorited listing IDs
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} string
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ids, err := h.favoriteCommands.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	c.JSON(http.StatusOK, ids)
}

// @Summary Add favorite
// @Description Favorite a listing; favoriting twice is a no-op
// @Tags favorites
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [put]
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
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

	if err := h.favoriteCommands.Add(c.Request.Context(), userID, listingID); err != nil {
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

	c.Status(http.StatusNoContent)
}

// @Summary Remove favorite
// @Description Remove a listing from the authenticated user's favorites
// @Tags favorites
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
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

	if err := h.favoriteCommands.Remove(c.Request.Context(), userID, listingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Favorite not found",
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
