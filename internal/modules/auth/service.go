package auth

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	staff StaffRepository
	jwt   jwtService
}

type LoginResult struct {
	User        *domain.StaffUser
	AccessToken string
}

func NewService(staff StaffRepository, jwt jwtService) *Service {
	return &Service{staff: staff, jwt: jwt}
}

// Login verifies the password and issues a token carrying the staff role.
// Unknown users and wrong passwords report the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.staff.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrAccountDisabled
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}
