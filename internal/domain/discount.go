package domain

import "time"

// Discount is a named percentage reduction applied to a reservation's
// price at creation time. Absence of a code means 0%.
type Discount struct {
	ID         int64     `json:"id"`
	Code       string    `json:"code" validate:"required,max=20"`
	Percentage float64   `json:"percentage" validate:"gte=0,lte=100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
