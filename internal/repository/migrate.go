package repository

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate creates the schema in parent->child order. On PostgreSQL it
// additionally installs an exclusion constraint so two racing requests can
// never both commit overlapping stays for the same room; the violation is
// translated to ErrOverlapping.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&staffRow{},
		&roomTypeRow{},
		&roomRow{},
		&guestRow{},
		&discountRow{},
		&reservationRow{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
			log.Printf("warning: btree_gist extension unavailable: %v", err)
			return nil
		}
		stmt := `
DO $$ BEGIN
  ALTER TABLE reservations ADD CONSTRAINT reservations_no_overlap
    EXCLUDE USING gist (
      room_number WITH =,
      daterange(start_date::date, end_date::date, '[)') WITH &&
    ) WHERE (deleted_at IS NULL);
EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
END $$`
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("warning: failed to install no-overlap constraint: %v", err)
		}
	}

	return nil
}
