package guest

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/guests", h.CreateGuest)
	rg.GET("/guests", h.ListGuests)
	rg.GET("/guests/:id", h.GetGuest)
	rg.PUT("/guests/:id", h.UpdateGuest)
	rg.DELETE("/guests/:id", h.DeleteGuest)
}

func (h *Handler) CreateGuest(c *gin.Context) {
	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	g, err := h.service.CreateGuest(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"guest": g})
}

func (h *Handler) ListGuests(c *gin.Context) {
	var q ListGuestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	guests, err := h.service.ListGuests(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guests": guests})
}

func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	g, err := h.service.GetGuest(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guest": g})
}

func (h *Handler) UpdateGuest(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	g, err := h.service.UpdateGuest(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guest": g})
}

func (h *Handler) DeleteGuest(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteGuest(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid guest ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Guest validation failed", map[string]string(fields))
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process guest")
	}
}
