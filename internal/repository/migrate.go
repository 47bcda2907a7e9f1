package repository

import (
	"stayhub/internal/domain"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Reviews are migrated as a
// schema placeholder; no flow writes them yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&accommodationModel{},
		&bookingModel{},
		&domain.Favorite{},
		&domain.Review{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return createOverlapConstraint(db)
	}
	return nil
}

// createOverlapConstraint installs the bookings_no_overlap exclusion
// constraint. The overlap count in CreateIfFree runs at READ COMMITTED,
// so two racing creates can both see zero rows; on postgres this
// constraint makes the loser's insert fail with SQLSTATE 23P01, which
// CreateIfFree maps back to ErrDateOverlap. sqlite does not need it:
// a single writer holds the database lock for the whole transaction.
func createOverlapConstraint(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}

	const q = `
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap'
  ) THEN
    ALTER TABLE bookings
      ADD CONSTRAINT bookings_no_overlap
      EXCLUDE USING gist (
        accommodation_id WITH =,
        daterange(check_in_date::date, check_out_date::date) WITH &&
      )
      WHERE (status IN ('pending', 'approved'));
  END IF;
END
$$;
`
	return db.Exec(q).Error
}
