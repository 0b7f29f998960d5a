package guest

type GuestRequest struct {
	Title        string `json:"title" binding:"required"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	County       string `json:"county" binding:"required"`
	Postcode     string `json:"postcode" binding:"required"`
}

type ListGuestsQuery struct {
	LastName string `form:"last_name"`
	Postcode string `form:"postcode"`
}
