package reservation

import (
	"context"
	"errors"
	"math"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Service struct {
	reservations ReservationRepository
	rooms        RoomRepository
	roomTypes    RoomTypeRepository
	guests       GuestRepository
	discounts    DiscountRepository
}

func NewService(
	reservations ReservationRepository,
	rooms RoomRepository,
	roomTypes RoomTypeRepository,
	guests GuestRepository,
	discounts DiscountRepository,
) *Service {
	return &Service{
		reservations: reservations,
		rooms:        rooms,
		roomTypes:    roomTypes,
		guests:       guests,
		discounts:    discounts,
	}
}

// stayPrice computes the total for a stay, rounded to cents:
// nightly rate * nights, reduced by the discount percentage.
func stayPrice(nightlyRate float64, nights int, discountPct float64) float64 {
	total := nightlyRate * float64(nights) * (1 - discountPct/100)
	return math.Round(total*100) / 100
}

// CheckAvailability reports whether the room is free for the half-open
// window [start, start+nights). A stay ending exactly on start does not
// block the room. excludeID skips the reservation being edited.
func (s *Service) CheckAvailability(ctx context.Context, roomNumber int, start time.Time, nights int, excludeID int64) (bool, error) {
	if nights < 1 {
		return false, ErrValidation
	}

	end := start.AddDate(0, 0, nights)
	overlapping, err := s.reservations.FindOverlapping(ctx, roomNumber, start, end, excludeID)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

// PriceQuote prices a stay of the given length for a room type. An empty
// discount code means no discount; an unknown one is an error.
func (s *Service) PriceQuote(ctx context.Context, roomTypeCode string, nights int, discountCode string) (float64, error) {
	if nights < 1 {
		return 0, ErrValidation
	}

	roomType, err := s.roomTypes.GetByCode(ctx, roomTypeCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}

	pct, err := s.discountPct(ctx, discountCode)
	if err != nil {
		return 0, err
	}

	return stayPrice(roomType.Price, nights, pct), nil
}

func (s *Service) discountPct(ctx context.Context, code string) (float64, error) {
	if code == "" {
		return 0, nil
	}
	d, err := s.discounts.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrDiscountNotFound
		}
		return 0, err
	}
	return d.Percentage, nil
}

// CreateReservation validates the request, freezes the price and persists
// the reservation. The overlap check and the insert run in one repository
// transaction; a conflict comes back as *ConflictError naming the
// clashing stay.
func (s *Service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	if req.Nights < 1 {
		return nil, ErrValidation
	}

	room, err := s.roomWithType(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if req.NumberOfGuests < 1 || req.NumberOfGuests > room.RoomType.MaxGuests {
		return nil, ErrGuestCount
	}

	if _, err := s.guests.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	pct, err := s.discountPct(ctx, req.DiscountCode)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ReferenceCode:  uuid.NewString(),
		GuestID:        req.GuestID,
		RoomNumber:     req.RoomNumber,
		ReservedAt:     time.Now().UTC(),
		StartDate:      start,
		Nights:         req.Nights,
		NumberOfGuests: req.NumberOfGuests,
		Price:          stayPrice(room.RoomType.Price, req.Nights, pct),
		Status:         domain.StatusReserved,
		DiscountCode:   req.DiscountCode,
		Notes:          req.Notes,
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		if errors.Is(err, repository.ErrOverlapping) {
			return nil, s.conflictFor(ctx, req.RoomNumber, start, req.Nights, 0)
		}
		return nil, err
	}
	return res, nil
}

// UpdateReservation edits dates, room, guest and notes. The stored price
// stays frozen; only the overlap and guest-count rules are re-applied.
func (s *Service) UpdateReservation(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	existing, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == domain.StatusCheckedOut {
		return nil, ErrAlreadyCheckedOut
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	if req.Nights < 1 {
		return nil, ErrValidation
	}

	room, err := s.roomWithType(ctx, req.RoomNumber)
	if err != nil {
		return nil, err
	}
	if req.NumberOfGuests < 1 || req.NumberOfGuests > room.RoomType.MaxGuests {
		return nil, ErrGuestCount
	}

	if _, err := s.guests.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}

	existing.GuestID = req.GuestID
	existing.RoomNumber = req.RoomNumber
	existing.StartDate = start
	existing.Nights = req.Nights
	existing.NumberOfGuests = req.NumberOfGuests
	existing.Notes = req.Notes

	if err := s.reservations.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrOverlapping) {
			return nil, s.conflictFor(ctx, req.RoomNumber, start, req.Nights, id)
		}
		return nil, err
	}
	return existing, nil
}

// CheckIn moves a reservation from Reserved to CheckedIn. No other
// transition is allowed into CheckedIn.
func (s *Service) CheckIn(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case domain.StatusCheckedIn:
		return nil, ErrAlreadyCheckedIn
	case domain.StatusCheckedOut:
		return nil, ErrAlreadyCheckedOut
	}

	if err := s.reservations.UpdateStatus(ctx, id, domain.StatusReserved, domain.StatusCheckedIn); err != nil {
		// a concurrent request won the transition between our read and the write
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}
	res.Status = domain.StatusCheckedIn
	return res, nil
}

// CheckOut moves a checked-in reservation to CheckedOut, recording the
// settled amount, which must lie within [0, price].
func (s *Service) CheckOut(ctx context.Context, id int64, amountPaid float64) (*domain.Reservation, error) {
	res, err := s.getReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case domain.StatusReserved:
		return nil, ErrNotCheckedIn
	case domain.StatusCheckedOut:
		return nil, ErrAlreadyCheckedOut
	}

	if amountPaid < 0 || amountPaid > res.Price {
		return nil, ErrAmountPaid
	}

	if err := s.reservations.CheckOut(ctx, id, amountPaid); err != nil {
		if errors.Is(err, repository.ErrStaleStatus) {
			return nil, ErrAlreadyCheckedOut
		}
		return nil, err
	}

	res.Status = domain.StatusCheckedOut
	res.AmountPaid = amountPaid
	return res, nil
}

// DeleteReservation is only allowed before check-in.
func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	res, err := s.getReservation(ctx, id)
	if err != nil {
		return err
	}
	if res.Status != domain.StatusReserved {
		return ErrCheckedIn
	}
	return s.reservations.Delete(ctx, id)
}

func (s *Service) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.getReservation(ctx, id)
}

func (s *Service) ListReservations(ctx context.Context, q ListReservationsQuery) ([]domain.Reservation, error) {
	var f repository.ReservationFilter

	if q.From != "" {
		from, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return nil, ErrValidation
		}
		f.From = from
	}
	if q.To != "" {
		to, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return nil, ErrValidation
		}
		f.To = to
	}
	f.GuestLastName = q.GuestLastName
	f.RoomNumber = q.RoomNumber

	return s.reservations.List(ctx, f)
}

// SearchAvailableRooms lists rooms free for the whole window, optionally
// narrowed to a room type.
func (s *Service) SearchAvailableRooms(ctx context.Context, start time.Time, nights int, roomTypeCode string) ([]domain.Room, error) {
	if nights < 1 {
		return nil, ErrValidation
	}
	end := start.AddDate(0, 0, nights)
	return s.reservations.AvailableRooms(ctx, start, end, roomTypeCode)
}

func (s *Service) getReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) roomWithType(ctx context.Context, number int) (*domain.Room, error) {
	room, err := s.rooms.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.RoomType == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// conflictFor fetches the clashing stay so the error can name its dates.
func (s *Service) conflictFor(ctx context.Context, roomNumber int, start time.Time, nights int, excludeID int64) error {
	end := start.AddDate(0, 0, nights)
	overlapping, err := s.reservations.FindOverlapping(ctx, roomNumber, start, end, excludeID)
	if err == nil && len(overlapping) > 0 {
		first := overlapping[0]
		return &ConflictError{
			RoomNumber: roomNumber,
			Start:      first.StartDate,
			End:        first.EndDate(),
		}
	}
	return &ConflictError{RoomNumber: roomNumber, Start: start, End: end}
}
