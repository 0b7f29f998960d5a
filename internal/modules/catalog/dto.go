package catalog

type RoomTypeRequest struct {
	Code           string  `json:"code" binding:"required,min=1,max=3"`
	Name           string  `json:"name" binding:"required,max=25"`
	Price          float64 `json:"price" binding:"required,gt=0"`
	Deluxe         bool    `json:"deluxe"`
	Bath           bool    `json:"bath"`
	SeparateShower bool    `json:"separate_shower"`
	MaxGuests      int     `json:"max_guests" binding:"required,gte=1"`
}

type RoomRequest struct {
	Number       int    `json:"number" binding:"required,gt=0"`
	RoomTypeCode string `json:"room_type_code" binding:"required"`
}

type DiscountRequest struct {
	Code       string  `json:"code" binding:"required,max=20"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}
