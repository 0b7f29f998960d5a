package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

type staffRow struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;size:64;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:128"`
	FullName     string    `gorm:"column:full_name;size:100"`
	Role         string    `gorm:"column:role;size:20"`
	Active       bool      `gorm:"column:active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (staffRow) TableName() string { return "staff_users" }

func toDomainStaff(m staffRow) *domain.StaffUser {
	return &domain.StaffUser{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		Role:         domain.StaffRole(m.Role),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *StaffRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	m := staffRow{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Role:         string(u.Role),
		Active:       u.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*u = *toDomainStaff(m)
	return nil
}

func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	var m staffRow
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&m)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainStaff(m), nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffUser, error) {
	var m staffRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainStaff(m), nil
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	var rows []staffRow
	if err := r.db.WithContext(ctx).Order("username").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.StaffUser, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainStaff(m))
	}
	return out, nil
}

func (r *StaffRepository) SetActive(ctx context.Context, id int64, active bool) error {
	tx := r.db.WithContext(ctx).Model(&staffRow{ID: id}).Update("active", active)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
