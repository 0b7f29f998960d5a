package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

type roomTypeRow struct {
	Code           string    `gorm:"column:code;primaryKey;size:3"`
	Name           string    `gorm:"column:name;size:25"`
	Price          float64   `gorm:"column:price"`
	Deluxe         bool      `gorm:"column:deluxe"`
	Bath           bool      `gorm:"column:bath"`
	SeparateShower bool      `gorm:"column:separate_shower"`
	MaxGuests      int       `gorm:"column:max_guests"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (roomTypeRow) TableName() string { return "room_types" }

func toDomainRoomType(m roomTypeRow) *domain.RoomType {
	return &domain.RoomType{
		Code:           m.Code,
		Name:           m.Name,
		Price:          m.Price,
		Deluxe:         m.Deluxe,
		Bath:           m.Bath,
		SeparateShower: m.SeparateShower,
		MaxGuests:      m.MaxGuests,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toRoomTypeRow(t *domain.RoomType) roomTypeRow {
	return roomTypeRow{
		Code:           t.Code,
		Name:           t.Name,
		Price:          t.Price,
		Deluxe:         t.Deluxe,
		Bath:           t.Bath,
		SeparateShower: t.SeparateShower,
		MaxGuests:      t.MaxGuests,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r *RoomTypeRepository) Create(ctx context.Context, t *domain.RoomType) error {
	m := toRoomTypeRow(t)

	var existing int64
	if err := r.db.WithContext(ctx).Model(&roomTypeRow{}).
		Where("code = ?", t.Code).Count(&existing).Error; err != nil {
		return translate(err)
	}
	if existing > 0 {
		return ErrDuplicate
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*t = *toDomainRoomType(m)
	return nil
}

func (r *RoomTypeRepository) GetByCode(ctx context.Context, code string) (*domain.RoomType, error) {
	var m roomTypeRow
	tx := r.db.WithContext(ctx).Where("code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainRoomType(m), nil
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var rows []roomTypeRow
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.RoomType, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoomType(m))
	}
	return out, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, t *domain.RoomType) error {
	tx := r.db.WithContext(ctx).Model(&roomTypeRow{Code: t.Code}).Updates(map[string]any{
		"name":            t.Name,
		"price":           t.Price,
		"deluxe":          t.Deluxe,
		"bath":            t.Bath,
		"separate_shower": t.SeparateShower,
		"max_guests":      t.MaxGuests,
	})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, code string) error {
	tx := r.db.WithContext(ctx).Where("code = ?", code).Delete(&roomTypeRow{})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
