package booking

import (
	"context"
	"errors"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/policy"
	"stayhub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	listings ListingReader

	// now is swappable so tests can pin "today"
	now func() time.Time
}

func NewService(bookings BookingRepository, listings ListingReader) *Service {
	return &Service{
		bookings: bookings,
		listings: listings,
		now:      time.Now,
	}
}

// Create runs the reservation preconditions in order, each with its
// own failure, then hands the overlap check plus insert to the
// repository as a single transaction.
func (s *Service) Create(ctx context.Context, actor policy.Subject, req CreateBookingRequest) (*domain.Booking, error) {
	if !policy.CanBook(actor) {
		return nil, ErrForbidden
	}

	if req.AccommodationID == 0 || req.CheckInDate == "" || req.CheckOutDate == "" || req.NumberOfGuests < 1 {
		return nil, ErrValidation
	}

	checkIn, err := time.Parse(domain.DateLayout, req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse(domain.DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}

	today := s.today()
	if checkIn.Before(today) {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	listing, err := s.listings.GetByID(ctx, req.AccommodationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if listing.Status != domain.ListingApproved {
		return nil, ErrNotBookable
	}

	b := &domain.Booking{
		UserID:          actor.ID,
		AccommodationID: req.AccommodationID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.NumberOfGuests,
		Status:          domain.BookingPending,
	}

	if err := s.bookings.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDateOverlap) {
			return nil, ErrOverlap
		}
		return nil, err
	}

	return b, nil
}

// Approve confirms a pending booking. Only the owner of the
// accommodation the booking references may approve, and only while the
// booking is still pending.
func (s *Service) Approve(ctx context.Context, actor policy.Subject, bookingID int64) (*domain.Booking, error) {
	return s.decide(ctx, actor, bookingID, domain.BookingApproved)
}

// Reject declines a pending booking. Rejected is terminal.
func (s *Service) Reject(ctx context.Context, actor policy.Subject, bookingID int64) (*domain.Booking, error) {
	return s.decide(ctx, actor, bookingID, domain.BookingRejected)
}

func (s *Service) decide(ctx context.Context, actor policy.Subject, bookingID int64, decision domain.BookingStatus) (*domain.Booking, error) {
	if !policy.CanHost(actor) {
		return nil, ErrForbidden
	}

	b, ownerID, err := s.bookings.GetWithListingOwner(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if ownerID != actor.ID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, decision); err != nil {
		return nil, err
	}

	b.Status = decision
	return b, nil
}

// Cancel is the renter's move: hosts reject, renters cancel. Allowed
// from pending or approved only.
func (s *Service) Cancel(ctx context.Context, actor policy.Subject, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.OwnsBooking(actor, b) {
		return nil, ErrForbidden
	}
	if !b.Status.Blocking() {
		return nil, ErrInvalidStatus
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, domain.BookingCancelled); err != nil {
		return nil, err
	}

	b.Status = domain.BookingCancelled
	return b, nil
}

func (s *Service) MyReservations(ctx context.Context, actor policy.Subject) ([]repository.ReservationDetails, error) {
	return s.bookings.GetUserReservations(ctx, actor.ID)
}

func (s *Service) HostBookings(ctx context.Context, actor policy.Subject) ([]repository.HostBookingDetails, error) {
	if !policy.CanHost(actor) {
		return nil, ErrForbidden
	}
	return s.bookings.GetHostBookings(ctx, actor.ID)
}

func (s *Service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
