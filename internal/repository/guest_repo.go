package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestRow struct {
	ID           int64          `gorm:"column:id;primaryKey"`
	Title        string         `gorm:"column:title;size:10"`
	FirstName    string         `gorm:"column:first_name;size:50"`
	LastName     string         `gorm:"column:last_name;size:50;index"`
	Phone        string         `gorm:"column:phone;size:12"`
	Email        string         `gorm:"column:email;size:320"`
	AddressLine1 string         `gorm:"column:address_line1;size:80"`
	AddressLine2 *string        `gorm:"column:address_line2;size:80"`
	City         string         `gorm:"column:city;size:80"`
	County       string         `gorm:"column:county;size:80"`
	Postcode     string         `gorm:"column:postcode;size:8;index"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (guestRow) TableName() string { return "guests" }

func toDomainGuest(m guestRow) *domain.Guest {
	var line2 string
	if m.AddressLine2 != nil {
		line2 = *m.AddressLine2
	}

	return &domain.Guest{
		ID:           m.ID,
		Title:        m.Title,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		Email:        m.Email,
		AddressLine1: m.AddressLine1,
		AddressLine2: line2,
		City:         m.City,
		County:       m.County,
		Postcode:     m.Postcode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toGuestRow(g *domain.Guest) guestRow {
	var line2 *string
	if g.AddressLine2 != "" {
		v := g.AddressLine2
		line2 = &v
	}

	return guestRow{
		ID:           g.ID,
		Title:        g.Title,
		FirstName:    g.FirstName,
		LastName:     g.LastName,
		Phone:        g.Phone,
		Email:        g.Email,
		AddressLine1: g.AddressLine1,
		AddressLine2: line2,
		City:         g.City,
		County:       g.County,
		Postcode:     g.Postcode,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := toGuestRow(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	*g = *toDomainGuest(m)
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var m guestRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainGuest(m), nil
}

// GuestFilter narrows List; both fields match case-insensitive substrings.
type GuestFilter struct {
	LastName string
	Postcode string
}

func (r *GuestRepository) List(ctx context.Context, f GuestFilter) ([]domain.Guest, error) {
	q := r.db.WithContext(ctx).Model(&guestRow{}).Order("last_name, first_name")
	if f.LastName != "" {
		q = q.Where("LOWER(last_name) LIKE LOWER(?)", "%"+f.LastName+"%")
	}
	if f.Postcode != "" {
		q = q.Where("LOWER(postcode) LIKE LOWER(?)", "%"+f.Postcode+"%")
	}

	var rows []guestRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Guest, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	m := toGuestRow(g)
	tx := r.db.WithContext(ctx).Model(&guestRow{ID: g.ID}).Updates(map[string]any{
		"title":         m.Title,
		"first_name":    m.FirstName,
		"last_name":     m.LastName,
		"phone":         m.Phone,
		"email":         m.Email,
		"address_line1": m.AddressLine1,
		"address_line2": m.AddressLine2,
		"city":          m.City,
		"county":        m.County,
		"postcode":      m.Postcode,
	})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&guestRow{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
