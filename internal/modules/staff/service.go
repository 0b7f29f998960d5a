package staff

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type StaffRepository interface {
	Create(ctx context.Context, u *domain.StaffUser) error
	GetByID(ctx context.Context, id int64) (*domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type Service struct {
	staff StaffRepository
}

func NewService(staff StaffRepository) *Service {
	return &Service{staff: staff}
}

func parseRole(raw string) (domain.StaffRole, error) {
	switch domain.StaffRole(raw) {
	case domain.RoleReceptionist, domain.RoleManager, domain.RoleITAdmin:
		return domain.StaffRole(raw), nil
	}
	return "", ErrUnknownRole
}

func (s *Service) CreateStaff(ctx context.Context, req CreateStaffRequest) (*domain.StaffUser, error) {
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.StaffUser{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		Active:       true,
	}

	if err := s.staff.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.StaffUser, error) {
	return s.staff.List(ctx)
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*domain.StaffUser, error) {
	if err := s.staff.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.staff.GetByID(ctx, id)
}
