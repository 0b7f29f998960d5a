package reservation

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	if res != nil {
		res.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindOverlapping(ctx context.Context, roomNumber int, start, end time.Time, excludeID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, roomNumber, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockReservationRepository) CheckOut(ctx context.Context, id int64, amount float64) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) AvailableRooms(ctx context.Context, start, end time.Time, roomTypeCode string) ([]domain.Room, error) {
	args := m.Called(ctx, start, end, roomTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockRoomTypeRepository struct {
	mock.Mock
}

func (m *MockRoomTypeRepository) GetByCode(ctx context.Context, code string) (*domain.RoomType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discount), args.Error(1)
}

func newTestService() (*Service, *MockReservationRepository, *MockRoomRepository, *MockRoomTypeRepository, *MockGuestRepository, *MockDiscountRepository) {
	reservations := new(MockReservationRepository)
	rooms := new(MockRoomRepository)
	roomTypes := new(MockRoomTypeRepository)
	guests := new(MockGuestRepository)
	discounts := new(MockDiscountRepository)
	s := NewService(reservations, rooms, roomTypes, guests, discounts)
	return s, reservations, rooms, roomTypes, guests, discounts
}

func standardRoom() *domain.Room {
	return &domain.Room{
		Number:       101,
		RoomTypeCode: "STD",
		RoomType: &domain.RoomType{
			Code:      "STD",
			Name:      "Standard",
			Price:     100.0,
			MaxGuests: 2,
		},
	}
}

func TestService_CreateReservation_Success(t *testing.T) {
	s, reservations, rooms, _, guests, _ := newTestService()

	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)
	guests.On("GetByID", mock.Anything, int64(7)).Return(&domain.Guest{ID: 7, LastName: "Smith"}, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-01",
		Nights:         3,
		NumberOfGuests: 2,
	}

	res, err := s.CreateReservation(context.Background(), req)

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, 300.0, res.Price)
	assert.Equal(t, domain.StatusReserved, res.Status)
	assert.NotEmpty(t, res.ReferenceCode)
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), res.EndDate())
}

func TestService_CreateReservation_WithDiscount(t *testing.T) {
	s, reservations, rooms, _, guests, discounts := newTestService()

	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)
	guests.On("GetByID", mock.Anything, int64(7)).Return(&domain.Guest{ID: 7}, nil)
	discounts.On("GetByCode", mock.Anything, "SUMMER10").Return(&domain.Discount{ID: 1, Code: "SUMMER10", Percentage: 10}, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-01",
		Nights:         3,
		NumberOfGuests: 2,
		DiscountCode:   "SUMMER10",
	}

	res, err := s.CreateReservation(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 270.0, res.Price)
}

func TestService_CreateReservation_UnknownDiscount(t *testing.T) {
	s, _, rooms, _, guests, discounts := newTestService()

	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)
	guests.On("GetByID", mock.Anything, int64(7)).Return(&domain.Guest{ID: 7}, nil)
	discounts.On("GetByCode", mock.Anything, "NOPE").Return(nil, repository.ErrNotFound)

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-01",
		Nights:         3,
		NumberOfGuests: 2,
		DiscountCode:   "NOPE",
	}

	_, err := s.CreateReservation(context.Background(), req)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
}

func TestService_CreateReservation_Overlap(t *testing.T) {
	s, reservations, rooms, _, guests, _ := newTestService()

	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)
	guests.On("GetByID", mock.Anything, int64(7)).Return(&domain.Guest{ID: 7}, nil)
	reservations.On("Create", mock.Anything, mock.Anything).Return(repository.ErrOverlapping)

	existing := domain.Reservation{
		ID:         1,
		RoomNumber: 101,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Nights:     3,
		Status:     domain.StatusReserved,
	}
	reservations.On("FindOverlapping", mock.Anything, 101, mock.Anything, mock.Anything, int64(0)).
		Return([]domain.Reservation{existing}, nil)

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-03",
		Nights:         2,
		NumberOfGuests: 2,
	}

	_, err := s.CreateReservation(context.Background(), req)

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, 101, conflict.RoomNumber)
	assert.Equal(t, "room 101 is already reserved from 2025-06-01 to 2025-06-04", conflict.Error())
}

func TestService_CreateReservation_TooManyGuests(t *testing.T) {
	s, _, rooms, _, _, _ := newTestService()

	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-01",
		Nights:         3,
		NumberOfGuests: 3, // STD sleeps two
	}

	_, err := s.CreateReservation(context.Background(), req)
	assert.ErrorIs(t, err, ErrGuestCount)
}

func TestService_CreateReservation_ZeroNights(t *testing.T) {
	s, _, _, _, _, _ := newTestService()

	req := CreateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-01",
		Nights:         0,
		NumberOfGuests: 1,
	}

	_, err := s.CreateReservation(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CheckAvailability_Free(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	start := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)
	reservations.On("FindOverlapping", mock.Anything, 101, start, end, int64(0)).
		Return([]domain.Reservation{}, nil)

	free, err := s.CheckAvailability(context.Background(), 101, start, 2, 0)

	assert.NoError(t, err)
	assert.True(t, free)
	reservations.AssertExpectations(t)
}

func TestService_CheckAvailability_Busy(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	reservations.On("FindOverlapping", mock.Anything, 101, start, start.AddDate(0, 0, 2), int64(0)).
		Return([]domain.Reservation{{ID: 1, RoomNumber: 101}}, nil)

	free, err := s.CheckAvailability(context.Background(), 101, start, 2, 0)

	assert.NoError(t, err)
	assert.False(t, free)
}

func TestService_PriceQuote(t *testing.T) {
	s, _, _, roomTypes, _, discounts := newTestService()

	roomTypes.On("GetByCode", mock.Anything, "STD").
		Return(&domain.RoomType{Code: "STD", Price: 100.0, MaxGuests: 2}, nil)
	discounts.On("GetByCode", mock.Anything, "SUMMER10").
		Return(&domain.Discount{Code: "SUMMER10", Percentage: 10}, nil)

	full, err := s.PriceQuote(context.Background(), "STD", 3, "")
	assert.NoError(t, err)
	assert.Equal(t, 300.0, full)

	discounted, err := s.PriceQuote(context.Background(), "STD", 3, "SUMMER10")
	assert.NoError(t, err)
	assert.Equal(t, 270.0, discounted)
}

func TestService_CheckIn_Success(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusReserved}, nil)
	reservations.On("UpdateStatus", mock.Anything, int64(5), domain.StatusReserved, domain.StatusCheckedIn).Return(nil)

	res, err := s.CheckIn(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedIn, res.Status)
	reservations.AssertExpectations(t)
}

func TestService_CheckIn_LostRace(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	// the read still sees RE, but another request transitions first
	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusReserved}, nil)
	reservations.On("UpdateStatus", mock.Anything, int64(5), domain.StatusReserved, domain.StatusCheckedIn).
		Return(repository.ErrStaleStatus)

	_, err := s.CheckIn(context.Background(), 5)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestService_CheckIn_AlreadyCheckedIn(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedIn}, nil)

	_, err := s.CheckIn(context.Background(), 5)
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
}

func TestService_CheckIn_AfterCheckOut(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedOut}, nil)

	_, err := s.CheckIn(context.Background(), 5)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestService_CheckOut_Success(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedIn, Price: 300.0}, nil)
	reservations.On("CheckOut", mock.Anything, int64(5), 300.0).Return(nil)

	res, err := s.CheckOut(context.Background(), 5, 300.0)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusCheckedOut, res.Status)
	assert.Equal(t, 300.0, res.AmountPaid)
	reservations.AssertExpectations(t)
}

func TestService_CheckOut_LostRace(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedIn, Price: 300.0}, nil)
	reservations.On("CheckOut", mock.Anything, int64(5), 300.0).
		Return(repository.ErrStaleStatus)

	_, err := s.CheckOut(context.Background(), 5, 300.0)
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestService_CheckOut_NotCheckedIn(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusReserved, Price: 300.0}, nil)

	_, err := s.CheckOut(context.Background(), 5, 300.0)
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestService_CheckOut_AmountOutOfRange(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedIn, Price: 300.0}, nil)

	_, err := s.CheckOut(context.Background(), 5, 301.0)
	assert.ErrorIs(t, err, ErrAmountPaid)

	_, err = s.CheckOut(context.Background(), 5, -1.0)
	assert.ErrorIs(t, err, ErrAmountPaid)
}

func TestService_DeleteReservation_AfterCheckIn(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedIn}, nil)

	err := s.DeleteReservation(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCheckedIn)
}

func TestService_UpdateReservation_PriceFrozen(t *testing.T) {
	s, reservations, rooms, _, guests, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).Return(&domain.Reservation{
		ID:         5,
		RoomNumber: 101,
		GuestID:    7,
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Nights:     3,
		Price:      300.0,
		Status:     domain.StatusReserved,
	}, nil)
	rooms.On("GetByNumber", mock.Anything, 101).Return(standardRoom(), nil)
	guests.On("GetByID", mock.Anything, int64(7)).Return(&domain.Guest{ID: 7}, nil)
	reservations.On("Update", mock.Anything, mock.Anything).Return(nil)

	req := UpdateReservationRequest{
		RoomNumber:     101,
		GuestID:        7,
		StartDate:      "2025-06-10",
		Nights:         5,
		NumberOfGuests: 2,
	}

	res, err := s.UpdateReservation(context.Background(), 5, req)

	assert.NoError(t, err)
	assert.Equal(t, 5, res.Nights)
	// the price was frozen at creation time and does not follow the new dates
	assert.Equal(t, 300.0, res.Price)
}

func TestService_UpdateReservation_AfterCheckOut(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	reservations.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Status: domain.StatusCheckedOut}, nil)

	_, err := s.UpdateReservation(context.Background(), 5, UpdateReservationRequest{
		RoomNumber: 101, GuestID: 7, StartDate: "2025-06-10", Nights: 2, NumberOfGuests: 1,
	})
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestService_SearchAvailableRooms(t *testing.T) {
	s, reservations, _, _, _, _ := newTestService()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	free := []domain.Room{
		{Number: 102, RoomTypeCode: "STD"},
		{Number: 103, RoomTypeCode: "STD"},
	}
	reservations.On("AvailableRooms", mock.Anything, start, start.AddDate(0, 0, 3), "STD").
		Return(free, nil)

	rooms, err := s.SearchAvailableRooms(context.Background(), start, 3, "STD")

	assert.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestStayPrice_Rounding(t *testing.T) {
	assert.Equal(t, 300.0, stayPrice(100.0, 3, 0))
	assert.Equal(t, 270.0, stayPrice(100.0, 3, 10))
	assert.Equal(t, 254.97, stayPrice(99.99, 3, 15))
}
