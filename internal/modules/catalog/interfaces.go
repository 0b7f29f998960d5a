package catalog

import (
	"context"

	"frontdesk/internal/domain"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, t *domain.RoomType) error
	GetByCode(ctx context.Context, code string) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
	Update(ctx context.Context, t *domain.RoomType) error
	Delete(ctx context.Context, code string) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByNumber(ctx context.Context, number int) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, number int) error
	CountByType(ctx context.Context, roomTypeCode string) (int64, error)
}

type DiscountRepository interface {
	Create(ctx context.Context, d *domain.Discount) error
	GetByCode(ctx context.Context, code string) (*domain.Discount, error)
	List(ctx context.Context) ([]domain.Discount, error)
	Update(ctx context.Context, d *domain.Discount) error
	Delete(ctx context.Context, id int64) error
}

type ReservationCounter interface {
	CountActiveForRoom(ctx context.Context, roomNumber int) (int64, error)
}
