package staff

import (
	"errors"
	"net/http"
	"strconv"

	"frontdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts staff administration; the group is expected to sit
// behind the it_admin middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/staff", h.CreateStaff)
	rg.GET("/staff", h.ListStaff)
	rg.PATCH("/staff/:id/active", h.SetActive)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.CreateStaff(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

func (h *Handler) ListStaff(c *gin.Context) {
	users, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) SetActive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid staff ID")
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownRole):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrUnknownRole.Error())
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE", ErrDuplicate.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", ErrNotFound.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process staff user")
	}
}
