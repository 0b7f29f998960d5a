package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomRow struct {
	Number       int         `gorm:"column:number;primaryKey;autoIncrement:false"`
	RoomTypeCode string      `gorm:"column:room_type_code;size:3;index"`
	CreatedAt    time.Time   `gorm:"column:created_at"`
	UpdatedAt    time.Time   `gorm:"column:updated_at"`
	RoomType     roomTypeRow `gorm:"foreignKey:RoomTypeCode;references:Code"`
}

func (roomRow) TableName() string { return "rooms" }

func toDomainRoom(m roomRow) *domain.Room {
	room := &domain.Room{
		Number:       m.Number,
		RoomTypeCode: m.RoomTypeCode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.RoomType.Code != "" {
		room.RoomType = toDomainRoomType(m.RoomType)
	}
	return room
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	var existing int64
	if err := r.db.WithContext(ctx).Model(&roomRow{}).
		Where("number = ?", room.Number).Count(&existing).Error; err != nil {
		return translate(err)
	}
	if existing > 0 {
		return ErrDuplicate
	}

	m := roomRow{Number: room.Number, RoomTypeCode: room.RoomTypeCode}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	room.CreatedAt = m.CreatedAt
	room.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByNumber loads the room together with its room type.
func (r *RoomRepository) GetByNumber(ctx context.Context, number int) (*domain.Room, error) {
	var m roomRow
	tx := r.db.WithContext(ctx).Preload("RoomType").Where("number = ?", number).First(&m)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rows []roomRow
	if err := r.db.WithContext(ctx).Preload("RoomType").Order("number").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	tx := r.db.WithContext(ctx).Model(&roomRow{Number: room.Number}).
		Update("room_type_code", room.RoomTypeCode)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, number int) error {
	tx := r.db.WithContext(ctx).Where("number = ?", number).Delete(&roomRow{})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByType reports how many rooms reference a room type; catalog uses
// it to refuse deleting a type that still has rooms.
func (r *RoomRepository) CountByType(ctx context.Context, roomTypeCode string) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&roomRow{}).
		Where("room_type_code = ?", roomTypeCode).Count(&n)
	if tx.Error != nil {
		return 0, translate(tx.Error)
	}
	return n, nil
}
