package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrDuplicate   = errors.New("duplicate record")
	ErrOverlapping = errors.New("reservation dates overlap")
	ErrStaleStatus = errors.New("reservation status changed concurrently")
)

// pg error codes worth recognizing: unique_violation and
// exclusion_violation (the no-overlap constraint).
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return ErrOverlapping
		case pgUniqueViolation:
			return ErrDuplicate
		}
	}
	return err
}
