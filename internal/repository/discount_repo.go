package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type DiscountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) *DiscountRepository {
	return &DiscountRepository{db: db}
}

type discountRow struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Code       string    `gorm:"column:code;size:20;uniqueIndex"`
	Percentage float64   `gorm:"column:percentage"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (discountRow) TableName() string { return "discounts" }

func toDomainDiscount(m discountRow) *domain.Discount {
	return &domain.Discount{
		ID:         m.ID,
		Code:       m.Code,
		Percentage: m.Percentage,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *DiscountRepository) Create(ctx context.Context, d *domain.Discount) error {
	m := discountRow{Code: d.Code, Percentage: d.Percentage}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*d = *toDomainDiscount(m)
	return nil
}

func (r *DiscountRepository) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	var m discountRow
	tx := r.db.WithContext(ctx).Where("code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainDiscount(m), nil
}

func (r *DiscountRepository) List(ctx context.Context) ([]domain.Discount, error) {
	var rows []discountRow
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Discount, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDiscount(m))
	}
	return out, nil
}

func (r *DiscountRepository) Update(ctx context.Context, d *domain.Discount) error {
	tx := r.db.WithContext(ctx).Model(&discountRow{ID: d.ID}).Updates(map[string]any{
		"code":       d.Code,
		"percentage": d.Percentage,
	})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&discountRow{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
