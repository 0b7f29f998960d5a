package repository

import (
	"context"
	"time"

	"frontdesk/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type reservationRow struct {
	ID             int64          `gorm:"column:id;primaryKey"`
	ReferenceCode  string         `gorm:"column:reference_code;size:64;uniqueIndex"`
	GuestID        int64          `gorm:"column:guest_id;index"`
	RoomNumber     int            `gorm:"column:room_number;index"`
	ReservedAt     time.Time      `gorm:"column:reserved_at"`
	StartDate      time.Time      `gorm:"column:start_date;index"`
	EndDate        time.Time      `gorm:"column:end_date;index"`
	Nights         int            `gorm:"column:nights"`
	NumberOfGuests int            `gorm:"column:number_of_guests"`
	Price          float64        `gorm:"column:price"`
	AmountPaid     float64        `gorm:"column:amount_paid"`
	Status         string         `gorm:"column:status;size:2"`
	DiscountCode   *string        `gorm:"column:discount_code;size:20"`
	Notes          *string        `gorm:"column:notes;size:500"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (reservationRow) TableName() string { return "reservations" }

func toDomainReservation(m reservationRow) *domain.Reservation {
	var discountCode, notes string
	if m.DiscountCode != nil {
		discountCode = *m.DiscountCode
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Reservation{
		ID:             m.ID,
		ReferenceCode:  m.ReferenceCode,
		GuestID:        m.GuestID,
		RoomNumber:     m.RoomNumber,
		ReservedAt:     m.ReservedAt,
		StartDate:      m.StartDate,
		Nights:         m.Nights,
		NumberOfGuests: m.NumberOfGuests,
		Price:          m.Price,
		AmountPaid:     m.AmountPaid,
		Status:         domain.ReservationStatus(m.Status),
		DiscountCode:   discountCode,
		Notes:          notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toReservationRow(r *domain.Reservation) reservationRow {
	var discountCode, notes *string
	if r.DiscountCode != "" {
		v := r.DiscountCode
		discountCode = &v
	}
	if r.Notes != "" {
		v := r.Notes
		notes = &v
	}

	return reservationRow{
		ID:             r.ID,
		ReferenceCode:  r.ReferenceCode,
		GuestID:        r.GuestID,
		RoomNumber:     r.RoomNumber,
		ReservedAt:     r.ReservedAt,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate(),
		Nights:         r.Nights,
		NumberOfGuests: r.NumberOfGuests,
		Price:          r.Price,
		AmountPaid:     r.AmountPaid,
		Status:         string(r.Status),
		DiscountCode:   discountCode,
		Notes:          notes,
	}
}

// overlapScope selects non-deleted reservations for the room whose
// half-open [start_date, end_date) intersects [start, end). Back-to-back
// stays (end_date == start) do not match.
func overlapScope(tx *gorm.DB, roomNumber int, start, end time.Time, excludeID int64) *gorm.DB {
	q := tx.Model(&reservationRow{}).
		Where("room_number = ?", roomNumber).
		Where("start_date < ? AND ? < end_date", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// FindOverlapping returns the reservations conflicting with the candidate
// window, excluding excludeID when editing an existing reservation.
func (r *ReservationRepository) FindOverlapping(ctx context.Context, roomNumber int, start, end time.Time, excludeID int64) ([]domain.Reservation, error) {
	var rows []reservationRow
	q := overlapScope(r.db.WithContext(ctx), roomNumber, start, end, excludeID).
		Order("start_date")
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// Create checks for conflicts and inserts inside a single transaction, so
// two racing requests cannot both pass the overlap check and commit. On
// PostgreSQL the exclusion constraint is the final backstop; its violation
// also comes back as ErrOverlapping.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	m := toReservationRow(res)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := overlapScope(tx, res.RoomNumber, res.StartDate, res.EndDate(), 0).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlapping
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return translate(err)
	}

	*res = *toDomainReservation(m)
	return nil
}

// Update rewrites the mutable fields, re-running the overlap check against
// every other reservation in the same transaction.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	m := toReservationRow(res)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := overlapScope(tx, res.RoomNumber, res.StartDate, res.EndDate(), res.ID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrOverlapping
		}

		upd := tx.Model(&reservationRow{ID: res.ID}).Updates(map[string]any{
			"guest_id":         m.GuestID,
			"room_number":      m.RoomNumber,
			"start_date":       m.StartDate,
			"end_date":         m.EndDate,
			"nights":           m.Nights,
			"number_of_guests": m.NumberOfGuests,
			"price":            m.Price,
			"discount_code":    m.DiscountCode,
			"notes":            m.Notes,
		})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var m reservationRow
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, translate(tx.Error)
	}
	return toDomainReservation(m), nil
}

// UpdateStatus moves a reservation from one status to another. The guard
// on the current status makes the transition atomic: of two racing
// requests only one row update matches, the other gets ErrStaleStatus.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	tx := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// CheckOut settles the amount paid and marks the reservation checked out
// in a single update, so a failure can never leave the amount recorded on
// a reservation that is still checked in.
func (r *ReservationRepository) CheckOut(ctx context.Context, id int64, amount float64) error {
	tx := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("id = ? AND status = ?", id, string(domain.StatusCheckedIn)).
		Updates(map[string]any{
			"amount_paid": amount,
			"status":      string(domain.StatusCheckedOut),
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&reservationRow{}, id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReservationFilter narrows List; the date range keeps reservations whose
// stay intersects [From, To).
type ReservationFilter struct {
	From          time.Time
	To            time.Time
	GuestLastName string
	RoomNumber    int
}

func (r *ReservationRepository) List(ctx context.Context, f ReservationFilter) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&reservationRow{}).
		Order("reservations.start_date, reservations.room_number")

	if !f.From.IsZero() {
		q = q.Where("reservations.end_date > ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("reservations.start_date < ?", f.To)
	}
	if f.RoomNumber != 0 {
		q = q.Where("reservations.room_number = ?", f.RoomNumber)
	}
	if f.GuestLastName != "" {
		q = q.Joins("JOIN guests ON guests.id = reservations.guest_id").
			Where("LOWER(guests.last_name) LIKE LOWER(?)", "%"+f.GuestLastName+"%")
	}

	var rows []reservationRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Reservation, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReservation(m))
	}
	return out, nil
}

// CountActiveForRoom counts reservations still occupying a room (reserved
// or checked in); room deletion is refused while any exist.
func (r *ReservationRepository) CountActiveForRoom(ctx context.Context, roomNumber int) (int64, error) {
	var n int64
	tx := r.db.WithContext(ctx).Model(&reservationRow{}).
		Where("room_number = ?", roomNumber).
		Where("status IN ?", []string{string(domain.StatusReserved), string(domain.StatusCheckedIn)}).
		Count(&n)
	if tx.Error != nil {
		return 0, translate(tx.Error)
	}
	return n, nil
}

// AvailableRooms lists rooms free for the whole candidate window,
// optionally narrowed to one room type.
func (r *ReservationRepository) AvailableRooms(ctx context.Context, start, end time.Time, roomTypeCode string) ([]domain.Room, error) {
	db := r.db.WithContext(ctx)

	busy := db.Model(&reservationRow{}).
		Select("room_number").
		Where("start_date < ? AND ? < end_date", end, start)

	q := db.Model(&roomRow{}).
		Preload("RoomType").
		Where("number NOT IN (?)", busy).
		Order("number")
	if roomTypeCode != "" {
		q = q.Where("room_type_code = ?", roomTypeCode)
	}

	var rows []roomRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}
