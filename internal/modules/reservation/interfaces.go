package reservation

import (
	"context"
	"time"

	"frontdesk/internal/domain"
	"frontdesk/internal/repository"
)

// ReservationRepository is the persistence the service depends on. Create
// and Update must run their overlap check and write in one transaction and
// return repository.ErrOverlapping on a conflict.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	Update(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, roomNumber int, start, end time.Time, excludeID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	CheckOut(ctx context.Context, id int64, amount float64) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error)
	AvailableRooms(ctx context.Context, start, end time.Time, roomTypeCode string) ([]domain.Room, error)
}

type RoomRepository interface {
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
}

type RoomTypeRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.RoomType, error)
}

type GuestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
}

type DiscountRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
}
