package auth

import (
	"context"

	"frontdesk/internal/domain"
)

type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
}
