package booking

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// BookingRepository defines the storage operations for the booking
// lifecycle.
type BookingRepository interface {
	CreateIfFree(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithListingOwner(ctx context.Context, bookingID int64) (*domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	GetUserReservations(ctx context.Context, userID int64) ([]repository.ReservationDetails, error)
	GetHostBookings(ctx context.Context, ownerID int64) ([]repository.HostBookingDetails, error)
}

// ListingReader is the read-only view of accommodations the booking
// lifecycle needs.
type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
}
