package api

import (
	"errors"
	"net/http"

	reqdto "tourease/internal/handler/dto/request"
	resdto "tourease/internal/handler/dto/response"
	"tourease/internal/handler/middleware"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands   commands.AuthCommands
	accountQueries queries.AccountQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, accountQueries queries.AccountQueries) *AuthHandler {
	return &AuthHandler{
		authCommands:   authCommands,
		accountQueries: accountQueries,
	}
}

// @Summary Sign up
// @Description Create an account and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.SignUp(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Username already taken",
			})
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

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Log in
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Get current account
// @Description Get the authenticated account's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AccountView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	account, err := h.accountQueries.GetCurrent(c.Request.Context(), accountID)
	if err != nil {
		switch {
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

	c.JSON(http.StatusOK, account)
}
