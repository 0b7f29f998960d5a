package catalog

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

// RegisterRoutes mounts the catalog CRUD. The whole group is expected to
// sit behind the manager-only middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/room-types", h.CreateRoomType)
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/room-types/:code", h.GetRoomType)
	rg.PUT("/room-types/:code", h.UpdateRoomType)
	rg.DELETE("/room-types/:code", h.DeleteRoomType)

	rg.POST("/rooms", h.CreateRoom)
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:number", h.GetRoom)
	rg.PUT("/rooms/:number", h.UpdateRoom)
	rg.DELETE("/rooms/:number", h.DeleteRoom)

	rg.POST("/discounts", h.CreateDiscount)
	rg.GET("/discounts", h.ListDiscounts)
	rg.PUT("/discounts/:id", h.UpdateDiscount)
	rg.DELETE("/discounts/:id", h.DeleteDiscount)
}

func (h *Handler) CreateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.CreateRoomType(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room_type": t})
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	types, err := h.service.ListRoomTypes(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_types": types})
}

func (h *Handler) GetRoomType(c *gin.Context) {
	t, err := h.service.GetRoomType(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": t})
}

func (h *Handler) UpdateRoomType(c *gin.Context) {
	var req RoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.UpdateRoomType(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": t})
}

func (h *Handler) DeleteRoomType(c *gin.Context) {
	if err := h.service.DeleteRoomType(c.Request.Context(), c.Param("code")); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	number, ok := h.numberParam(c)
	if !ok {
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), number)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	number, ok := h.numberParam(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), number, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeleteRoom(c *gin.Context) {
	number, ok := h.numberParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), number); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CreateDiscount(c *gin.Context) {
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.CreateDiscount(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"discount": d})
}

func (h *Handler) ListDiscounts(c *gin.Context) {
	discounts, err := h.service.ListDiscounts(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discounts": discounts})
}

func (h *Handler) UpdateDiscount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid discount ID")
		return
	}

	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDiscount(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"discount": d})
}

func (h *Handler) DeleteDiscount(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid discount ID")
		return
	}

	if err := h.service.DeleteDiscount(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) numberParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room number")
		return 0, false
	}
	return number, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrUnknownType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE", "Record already exists")
	case errors.Is(err, ErrRoomTypeInUse), errors.Is(err, ErrRoomInUse):
		response.Error(c, http.StatusConflict, "IN_USE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
	}
}
