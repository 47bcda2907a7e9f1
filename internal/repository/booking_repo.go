package repository

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDateOverlap is returned when the requested interval collides with
// a pending or approved booking on the same accommodation.
var ErrDateOverlap = errors.New("booking dates overlap an existing reservation")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Dates are stored as ISO YYYY-MM-DD text: lexicographic order equals
// calendar order, so range comparisons work identically on postgres
// and sqlite.
type bookingModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id;index"`
	AccommodationID int64     `gorm:"column:accommodation_id;index"`
	CheckInDate     string    `gorm:"column:check_in_date"`
	CheckOutDate    string    `gorm:"column:check_out_date"`
	NumberOfGuests  int       `gorm:"column:number_of_guests"`
	Status          string    `gorm:"column:status;default:pending;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	checkIn, _ := time.Parse(domain.DateLayout, m.CheckInDate)
	checkOut, _ := time.Parse(domain.DateLayout, m.CheckOutDate)

	return &domain.Booking{
		ID:              m.ID,
		UserID:          m.UserID,
		AccommodationID: m.AccommodationID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          m.NumberOfGuests,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		UserID:          b.UserID,
		AccommodationID: b.AccommodationID,
		CheckInDate:     b.CheckIn.Format(domain.DateLayout),
		CheckOutDate:    b.CheckOut.Format(domain.DateLayout),
		NumberOfGuests:  b.Guests,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// CreateIfFree runs the overlap check and the insert as one
// transaction so two racing requests for overlapping dates cannot both
// commit. Cancelled and rejected bookings do not hold their dates.
func (r *BookingRepository) CreateIfFree(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := `
SELECT COUNT(1)
FROM bookings
WHERE accommodation_id = ?
  AND status IN ('pending', 'approved')
  AND check_in_date < ?
  AND check_out_date > ?
`
		if err := tx.Raw(q, m.AccommodationID, m.CheckOutDate, m.CheckInDate).Scan(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDateOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		// exclusion constraint backstop on postgres
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_overlap" {
			return ErrDateOverlap
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBooking(m), nil
}

// GetWithListingOwner loads a booking together with the owner of the
// accommodation it references. Approval rights hang off that owner id,
// not off the booking's renter.
func (r *BookingRepository) GetWithListingOwner(ctx context.Context, bookingID int64) (*domain.Booking, int64, error) {
	type row struct {
		bookingModel
		OwnerID int64 `gorm:"column:owner_id"`
	}

	var res row
	q := `
SELECT b.*, a.owner_id
FROM bookings b
JOIN accommodations a ON a.id = b.accommodation_id
WHERE b.id = ?
`
	tx := r.db.WithContext(ctx).Raw(q, bookingID).Scan(&res)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, 0, gorm.ErrRecordNotFound
	}
	return toDomainBooking(res.bookingModel), res.OwnerID, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", bookingID).Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReservationDetails joins a booking with its accommodation for the
// renter's reservation list.
type ReservationDetails struct {
	ID                   int64     `gorm:"column:id"`
	CheckInDate          string    `gorm:"column:check_in_date"`
	CheckOutDate         string    `gorm:"column:check_out_date"`
	NumberOfGuests       int       `gorm:"column:number_of_guests"`
	Status               string    `gorm:"column:status"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	AccommodationID      int64     `gorm:"column:accommodation_id"`
	AccommodationName    string    `gorm:"column:accommodation_name"`
	AccommodationAddress string    `gorm:"column:accommodation_address"`
	ImageURL             string    `gorm:"column:image_url"`
	PricePerNight        int64     `gorm:"column:price_per_night"`
}

func (r *BookingRepository) GetUserReservations(ctx context.Context, userID int64) ([]ReservationDetails, error) {
	var rows []ReservationDetails
	q := `
SELECT
  b.id,
  b.check_in_date,
  b.check_out_date,
  b.number_of_guests,
  b.status,
  b.created_at,
  a.id AS accommodation_id,
  a.name AS accommodation_name,
  a.address AS accommodation_address,
  a.image_url,
  a.price_per_night
FROM bookings b
JOIN accommodations a ON a.id = b.accommodation_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
`
	if err := r.db.WithContext(ctx).Raw(q, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// HostBookingDetails joins a booking with its accommodation and the
// renter's identity for the host dashboard.
type HostBookingDetails struct {
	ID                int64     `gorm:"column:id"`
	CheckInDate       string    `gorm:"column:check_in_date"`
	CheckOutDate      string    `gorm:"column:check_out_date"`
	NumberOfGuests    int       `gorm:"column:number_of_guests"`
	Status            string    `gorm:"column:status"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	AccommodationID   int64     `gorm:"column:accommodation_id"`
	AccommodationName string    `gorm:"column:accommodation_name"`
	PricePerNight     int64     `gorm:"column:price_per_night"`
	RenterID          int64     `gorm:"column:renter_id"`
	RenterUsername    string    `gorm:"column:renter_username"`
	RenterPhone       string    `gorm:"column:renter_phone"`
}

func (r *BookingRepository) GetHostBookings(ctx context.Context, ownerID int64) ([]HostBookingDetails, error) {
	var rows []HostBookingDetails
	q := `
SELECT
  b.id,
  b.check_in_date,
  b.check_out_date,
  b.number_of_guests,
  b.status,
  b.created_at,
  a.id AS accommodation_id,
  a.name AS accommodation_name,
  a.price_per_night,
  u.id AS renter_id,
  u.username AS renter_username,
  u.phone AS renter_phone
FROM bookings b
JOIN accommodations a ON a.id = b.accommodation_id
JOIN users u ON u.id = b.user_id
WHERE a.owner_id = ?
ORDER BY b.created_at DESC
`
	if err := r.db.WithContext(ctx).Raw(q, ownerID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// HasBlockingForAccommodation reports whether any pending or approved
// booking still references the accommodation. Listings with such
// bookings must not be deleted.
func (r *BookingRepository) HasBlockingForAccommodation(ctx context.Context, accommodationID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("accommodation_id = ? AND status IN ('pending', 'approved')", accommodationID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
