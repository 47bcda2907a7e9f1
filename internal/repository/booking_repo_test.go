package repository

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBookingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// An in-memory sqlite database exists per connection. Pin the pool
	// to a single connection so every goroutine in the test sees the
	// same schema and data.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func pendingBooking(t *testing.T, accommodationID int64, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		UserID:          1,
		AccommodationID: accommodationID,
		CheckIn:         day(t, checkIn),
		CheckOut:        day(t, checkOut),
		Guests:          2,
		Status:          domain.BookingPending,
	}
}

func TestCreateIfFree_RejectsOverlap(t *testing.T) {
	repo := NewBookingRepository(newBookingTestDB(t))
	ctx := context.Background()

	first := pendingBooking(t, 1, "2026-10-01", "2026-10-05")
	require.NoError(t, repo.CreateIfFree(ctx, first))
	assert.NotZero(t, first.ID)

	overlapping := pendingBooking(t, 1, "2026-10-03", "2026-10-07")
	assert.ErrorIs(t, repo.CreateIfFree(ctx, overlapping), ErrDateOverlap)

	// Touching dates do not conflict, and other listings are unaffected.
	touching := pendingBooking(t, 1, "2026-10-05", "2026-10-08")
	assert.NoError(t, repo.CreateIfFree(ctx, touching))

	otherListing := pendingBooking(t, 2, "2026-10-03", "2026-10-07")
	assert.NoError(t, repo.CreateIfFree(ctx, otherListing))
}

func TestCreateIfFree_ConcurrentOverlap(t *testing.T) {
	repo := NewBookingRepository(newBookingTestDB(t))

	const racers = 8

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := pendingBooking(t, 1, "2026-11-10", "2026-11-15")
			b.UserID = int64(i + 1)
			errs[i] = repo.CreateIfFree(context.Background(), b)
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrDateOverlap)
		}
	}
	assert.Equal(t, 1, won, "exactly one racing request should win the dates")

	var cnt int64
	require.NoError(t, repo.db.Model(&bookingModel{}).Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestCreateIfFree_CancelledDatesAreFree(t *testing.T) {
	repo := NewBookingRepository(newBookingTestDB(t))
	ctx := context.Background()

	first := pendingBooking(t, 1, "2026-12-01", "2026-12-05")
	require.NoError(t, repo.CreateIfFree(ctx, first))
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, domain.BookingCancelled))

	retry := pendingBooking(t, 1, "2026-12-01", "2026-12-05")
	assert.NoError(t, repo.CreateIfFree(ctx, retry))
}

// TestMigrate_PostgresOverlapConstraint needs a real postgres instance;
// point TEST_POSTGRES_DSN at a throwaway database to run it. It checks
// that Migrate installs bookings_no_overlap and that the constraint
// rejects an overlapping insert that bypasses the application-level
// count, which is what closes the race between two READ COMMITTED
// transactions.
func TestMigrate_PostgresOverlapConstraint(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	suffix := time.Now().UnixNano()
	defer db.Exec("DELETE FROM bookings WHERE number_of_guests = ?", suffix)

	var cnt int64
	require.NoError(t, db.Raw(
		"SELECT COUNT(1) FROM pg_constraint WHERE conname = 'bookings_no_overlap'",
	).Scan(&cnt).Error)
	require.EqualValues(t, 1, cnt, "Migrate should install the exclusion constraint")

	insert := func(checkIn, checkOut string) error {
		return db.Exec(fmt.Sprintf(
			"INSERT INTO bookings (user_id, accommodation_id, check_in_date, check_out_date, number_of_guests, status, created_at, updated_at) "+
				"VALUES (1, %d, ?, ?, ?, 'pending', NOW(), NOW())", suffix),
			checkIn, checkOut, suffix,
		).Error
	}

	require.NoError(t, insert("2026-10-01", "2026-10-05"))
	assert.Error(t, insert("2026-10-03", "2026-10-07"), "overlapping insert must hit bookings_no_overlap")
	assert.NoError(t, insert("2026-10-05", "2026-10-08"), "touching dates do not overlap a half-open range")

	repo := NewBookingRepository(db)
	blocked := pendingBooking(t, suffix, "2026-10-02", "2026-10-04")
	assert.ErrorIs(t, repo.CreateIfFree(context.Background(), blocked), ErrDateOverlap)
}
