package domain

import "time"

type StaffRole string

const (
	RoleReceptionist StaffRole = "receptionist"
	RoleManager      StaffRole = "manager"
	RoleITAdmin      StaffRole = "it_admin"
)

type StaffUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,max=64"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         StaffRole `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
