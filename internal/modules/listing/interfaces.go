package listing

import (
	"context"

	"stayhub/internal/domain"
)

// AccommodationRepository defines the storage operations the listing
// lifecycle needs.
type AccommodationRepository interface {
	Create(ctx context.Context, a *domain.Accommodation) error
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	Update(ctx context.Context, a *domain.Accommodation) error
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, newStatus domain.ListingStatus) error
	ListByStatus(ctx context.Context, status domain.ListingStatus) ([]domain.Accommodation, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Accommodation, error)
}

// BookingGuard answers whether a listing still has bookings holding
// their dates; such listings must not be deleted.
type BookingGuard interface {
	HasBlockingForAccommodation(ctx context.Context, accommodationID int64) (bool, error)
}
