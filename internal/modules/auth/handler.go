package auth

import (
	"errors"
	"net/http"

	"frontdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
		case errors.Is(err, ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"user": gin.H{
			"id":        result.User.ID,
			"username":  result.User.Username,
			"full_name": result.User.FullName,
			"role":      result.User.Role,
		},
	})
}
