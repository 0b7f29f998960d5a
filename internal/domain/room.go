package domain

import "time"

// RoomType is a catalog entry; Code is the natural key ("STD", "DLX", ...).
type RoomType struct {
	Code           string    `json:"code" validate:"required,min=1,max=3"`
	Name           string    `json:"name" validate:"required,max=25"`
	Price          float64   `json:"price" validate:"required,gt=0"`
	Deluxe         bool      `json:"deluxe"`
	Bath           bool      `json:"bath"`
	SeparateShower bool      `json:"separate_shower"`
	MaxGuests      int       `json:"max_guests" validate:"required,gte=1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Room is a physical room. Number is the natural key (101, 102, ...).
type Room struct {
	Number       int       `json:"number" validate:"required,gt=0"`
	RoomTypeCode string    `json:"room_type_code" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	RoomType *RoomType `json:"room_type,omitempty"`
}
