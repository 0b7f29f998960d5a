package domain

import (
	"fmt"
	"time"
)

type Guest struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title" validate:"required,max=10"`
	FirstName    string    `json:"first_name" validate:"required,max=50"`
	LastName     string    `json:"last_name" validate:"required,max=50"`
	Phone        string    `json:"phone" validate:"required,phone"`
	Email        string    `json:"email" validate:"required,email"`
	AddressLine1 string    `json:"address_line1" validate:"required,max=80"`
	AddressLine2 string    `json:"address_line2,omitempty" validate:"max=80"`
	City         string    `json:"city" validate:"required,max=80"`
	County       string    `json:"county" validate:"required,max=80"`
	Postcode     string    `json:"postcode" validate:"required,max=8"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName returns the short form used on lists and confirmations,
// e.g. "Mr J. Smith".
func (g Guest) DisplayName() string {
	if g.FirstName == "" {
		return fmt.Sprintf("%s %s", g.Title, g.LastName)
	}
	return fmt.Sprintf("%s %c. %s", g.Title, g.FirstName[0], g.LastName)
}
