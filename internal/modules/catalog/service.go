package catalog

import (
	"context"
	"errors"
	"regexp"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

// room type codes look like "STD" or "DLX"
var roomTypeCodeRe = regexp.MustCompile(`^[A-Z]{1,3}$`)

type Service struct {
	roomTypes    RoomTypeRepository
	rooms        RoomRepository
	discounts    DiscountRepository
	reservations ReservationCounter
}

func NewService(
	roomTypes RoomTypeRepository,
	rooms RoomRepository,
	discounts DiscountRepository,
	reservations ReservationCounter,
) *Service {
	return &Service{
		roomTypes:    roomTypes,
		rooms:        rooms,
		discounts:    discounts,
		reservations: reservations,
	}
}

// ---- room types ----

func (s *Service) CreateRoomType(ctx context.Context, req RoomTypeRequest) (*domain.RoomType, error) {
	if !roomTypeCodeRe.MatchString(req.Code) {
		return nil, ErrValidation
	}

	t := &domain.RoomType{
		Code:           req.Code,
		Name:           req.Name,
		Price:          req.Price,
		Deluxe:         req.Deluxe,
		Bath:           req.Bath,
		SeparateShower: req.SeparateShower,
		MaxGuests:      req.MaxGuests,
	}
	if err := s.roomTypes.Create(ctx, t); err != nil {
		return nil, mapRepoErr(err)
	}
	return t, nil
}

func (s *Service) GetRoomType(ctx context.Context, code string) (*domain.RoomType, error) {
	t, err := s.roomTypes.GetByCode(ctx, code)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return t, nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypes.List(ctx)
}

func (s *Service) UpdateRoomType(ctx context.Context, code string, req RoomTypeRequest) (*domain.RoomType, error) {
	t := &domain.RoomType{
		Code:           code,
		Name:           req.Name,
		Price:          req.Price,
		Deluxe:         req.Deluxe,
		Bath:           req.Bath,
		SeparateShower: req.SeparateShower,
		MaxGuests:      req.MaxGuests,
	}
	if err := s.roomTypes.Update(ctx, t); err != nil {
		return nil, mapRepoErr(err)
	}
	return t, nil
}

// DeleteRoomType refuses while rooms still reference the type; cascading
// here would silently detach rooms from their pricing.
func (s *Service) DeleteRoomType(ctx context.Context, code string) error {
	n, err := s.rooms.CountByType(ctx, code)
	if err != nil {
		return mapRepoErr(err)
	}
	if n > 0 {
		return ErrRoomTypeInUse
	}
	return mapRepoErr(s.roomTypes.Delete(ctx, code))
}

// ---- rooms ----

func (s *Service) CreateRoom(ctx context.Context, req RoomRequest) (*domain.Room, error) {
	if _, err := s.roomTypes.GetByCode(ctx, req.RoomTypeCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownType
		}
		return nil, err
	}

	room := &domain.Room{Number: req.Number, RoomTypeCode: req.RoomTypeCode}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) UpdateRoom(ctx context.Context, number int, req RoomRequest) (*domain.Room, error) {
	if _, err := s.roomTypes.GetByCode(ctx, req.RoomTypeCode); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownType
		}
		return nil, err
	}

	room := &domain.Room{Number: number, RoomTypeCode: req.RoomTypeCode}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, number int) error {
	n, err := s.reservations.CountActiveForRoom(ctx, number)
	if err != nil {
		return mapRepoErr(err)
	}
	if n > 0 {
		return ErrRoomInUse
	}
	return mapRepoErr(s.rooms.Delete(ctx, number))
}

// ---- discounts ----

func (s *Service) CreateDiscount(ctx context.Context, req DiscountRequest) (*domain.Discount, error) {
	d := &domain.Discount{Code: req.Code, Percentage: req.Percentage}
	if err := s.discounts.Create(ctx, d); err != nil {
		return nil, mapRepoErr(err)
	}
	return d, nil
}

func (s *Service) ListDiscounts(ctx context.Context) ([]domain.Discount, error) {
	return s.discounts.List(ctx)
}

func (s *Service) UpdateDiscount(ctx context.Context, id int64, req DiscountRequest) (*domain.Discount, error) {
	d := &domain.Discount{ID: id, Code: req.Code, Percentage: req.Percentage}
	if err := s.discounts.Update(ctx, d); err != nil {
		return nil, mapRepoErr(err)
	}
	return d, nil
}

func (s *Service) DeleteDiscount(ctx context.Context, id int64) error {
	return mapRepoErr(s.discounts.Delete(ctx, id))
}

func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrDuplicate
	default:
		return err
	}
}
