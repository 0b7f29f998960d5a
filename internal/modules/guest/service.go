package guest

import (
	"context"
	"errors"
	"strings"

	"frontdesk/internal/domain"
	"frontdesk/internal/pkg/validator"
	"frontdesk/internal/repository"
)

type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	List(ctx context.Context, f repository.GuestFilter) ([]domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	guests GuestRepository
}

func NewService(guests GuestRepository) *Service {
	return &Service{guests: guests}
}

// normalizePhone keeps digits and a leading "+". The 11-digit cap is
// checked by validation after normalizing, so "0044 (7700) 900123" and
// "00447700900123" are judged by the same digits.
func normalizePhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fromRequest(req GuestRequest) domain.Guest {
	return domain.Guest{
		Title:        strings.TrimSpace(req.Title),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Phone:        normalizePhone(req.Phone),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		AddressLine1: strings.TrimSpace(req.AddressLine1),
		AddressLine2: strings.TrimSpace(req.AddressLine2),
		City:         strings.TrimSpace(req.City),
		County:       strings.TrimSpace(req.County),
		Postcode:     strings.ToUpper(strings.TrimSpace(req.Postcode)),
	}
}

func (s *Service) CreateGuest(ctx context.Context, req GuestRequest) (*domain.Guest, error) {
	g := fromRequest(req)
	if fields := validator.Validate(g); fields != nil {
		return nil, FieldErrors(fields)
	}

	if err := s.guests.Create(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) GetGuest(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) ListGuests(ctx context.Context, q ListGuestsQuery) ([]domain.Guest, error) {
	return s.guests.List(ctx, repository.GuestFilter{
		LastName: q.LastName,
		Postcode: q.Postcode,
	})
}

func (s *Service) UpdateGuest(ctx context.Context, id int64, req GuestRequest) (*domain.Guest, error) {
	g := fromRequest(req)
	g.ID = id
	if fields := validator.Validate(g); fields != nil {
		return nil, FieldErrors(fields)
	}

	if err := s.guests.Update(ctx, &g); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (s *Service) DeleteGuest(ctx context.Context, id int64) error {
	err := s.guests.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
