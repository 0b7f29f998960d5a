package reservation

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/availability", h.CheckAvailability)
	rg.GET("/price-quote", h.PriceQuote)
	rg.GET("/available-rooms", h.SearchAvailableRooms)

	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations", h.ListReservations)
	rg.GET("/reservations/:id", h.GetReservation)
	rg.PUT("/reservations/:id", h.UpdateReservation)
	rg.DELETE("/reservations/:id", h.DeleteReservation)
	rg.POST("/reservations/:id/check-in", h.CheckIn)
	rg.POST("/reservations/:id/check-out", h.CheckOut)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomNumber, err := strconv.Atoi(c.Query("room_number"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_number")
		return
	}
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	nights, err := strconv.Atoi(c.Query("nights"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid nights")
		return
	}
	var excludeID int64
	if v := c.Query("exclude_id"); v != "" {
		excludeID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid exclude_id")
			return
		}
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomNumber, start, nights, excludeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) PriceQuote(c *gin.Context) {
	roomType := c.Query("room_type")
	if roomType == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing room_type")
		return
	}
	nights, err := strconv.Atoi(c.Query("nights"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid nights")
		return
	}

	price, err := h.service.PriceQuote(c.Request.Context(), roomType, nights, c.Query("discount_code"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"price": price})
}

func (h *Handler) SearchAvailableRooms(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	nights, err := strconv.Atoi(c.Query("nights"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid nights")
		return
	}

	rooms, err := h.service.SearchAvailableRooms(c.Request.Context(), start, nights, c.Query("room_type"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": res})
}

func (h *Handler) ListReservations(c *gin.Context) {
	var q ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	reservations, err := h.service.ListReservations(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": reservations})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	res, err := h.service.GetReservation(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.UpdateReservation(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteReservation(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	res, err := h.service.CheckIn(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.CheckOut(c.Request.Context(), id, req.AmountPaid)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": res})
}

func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		response.Error(c, http.StatusConflict, "RESERVATION_CONFLICT", conflict.Error())
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation dates")
	case errors.Is(err, ErrGuestCount):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrGuestCount.Error())
	case errors.Is(err, ErrAmountPaid):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", ErrAmountPaid.Error())
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrGuestNotFound),
		errors.Is(err, ErrDiscountNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrAlreadyCheckedIn),
		errors.Is(err, ErrNotCheckedIn),
		errors.Is(err, ErrAlreadyCheckedOut),
		errors.Is(err, ErrCheckedIn):
		response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process reservation")
	}
}
