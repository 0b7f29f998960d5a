package reservation

type CreateReservationRequest struct {
	RoomNumber     int    `json:"room_number" binding:"required"`
	GuestID        int64  `json:"guest_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	Nights         int    `json:"nights" binding:"required"`
	NumberOfGuests int    `json:"number_of_guests" binding:"required"`
	DiscountCode   string `json:"discount_code"`
	Notes          string `json:"notes" binding:"max=500"`
}

type UpdateReservationRequest struct {
	RoomNumber     int    `json:"room_number" binding:"required"`
	GuestID        int64  `json:"guest_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	Nights         int    `json:"nights" binding:"required"`
	NumberOfGuests int    `json:"number_of_guests" binding:"required"`
	Notes          string `json:"notes" binding:"max=500"`
}

type CheckOutRequest struct {
	AmountPaid float64 `json:"amount_paid"`
}

type ListReservationsQuery struct {
	From          string `form:"from"`
	To            string `form:"to"`
	GuestLastName string `form:"last_name"`
	RoomNumber    int    `form:"room_number"`
}
