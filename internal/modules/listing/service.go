package listing

import (
	"context"
	"errors"

	"stayhub/internal/domain"
	"stayhub/internal/policy"

	"gorm.io/gorm"
)

type Service struct {
	listings AccommodationRepository
	bookings BookingGuard
}

func NewService(listings AccommodationRepository, bookings BookingGuard) *Service {
	return &Service{
		listings: listings,
		bookings: bookings,
	}
}

// Submit creates a listing in pending_review for moderation.
func (s *Service) Submit(ctx context.Context, actor policy.Subject, req ListingRequest) (*domain.Accommodation, error) {
	if !policy.CanHost(actor) {
		return nil, ErrForbidden
	}

	a := &domain.Accommodation{
		OwnerID:       actor.ID,
		Name:          req.Name,
		Address:       req.Address,
		Description:   req.Description,
		PricePerNight: req.Price,
		StarRating:    req.Stars,
		ImageURL:      req.ImageURL,
		Status:        domain.ListingPendingReview,
	}

	if err := s.listings.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update edits a listing the actor owns. Content changed, so the
// status always resets to pending_review, whatever it was before.
func (s *Service) Update(ctx context.Context, actor policy.Subject, id int64, req ListingRequest) (*domain.Accommodation, error) {
	if !policy.CanHost(actor) {
		return nil, ErrForbidden
	}

	a, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.OwnsListing(actor, a) {
		return nil, ErrForbidden
	}

	a.Name = req.Name
	a.Address = req.Address
	a.Description = req.Description
	a.PricePerNight = req.Price
	a.StarRating = req.Stars
	a.ImageURL = req.ImageURL
	a.Status = domain.ListingPendingReview

	if err := s.listings.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes a listing the actor owns. Refused while pending or
// approved bookings still reference it, so no reservation is left
// dangling.
func (s *Service) Delete(ctx context.Context, actor policy.Subject, id int64) error {
	a, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !policy.OwnsListing(actor, a) {
		return ErrForbidden
	}

	blocked, err := s.bookings.HasBlockingForAccommodation(ctx, id)
	if err != nil {
		return err
	}
	if blocked {
		return ErrActiveBookings
	}

	return s.listings.Delete(ctx, id)
}

// Moderate moves a listing between approved, rejected and suspended
// with no precondition on the prior status. Lenient moderation is the
// product's model: an admin can re-approve a rejected listing directly.
func (s *Service) Moderate(ctx context.Context, actor policy.Subject, id int64, newStatus domain.ListingStatus) error {
	if !policy.CanModerate(actor) {
		return ErrForbidden
	}

	switch newStatus {
	case domain.ListingApproved, domain.ListingRejected, domain.ListingSuspended:
	default:
		return ErrValidation
	}

	if err := s.listings.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// List returns the public catalog: approved listings only.
func (s *Service) List(ctx context.Context) ([]domain.Accommodation, error) {
	return s.listings.ListByStatus(ctx, domain.ListingApproved)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	a, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListMine returns the actor's own listings in every status.
func (s *Service) ListMine(ctx context.Context, actor policy.Subject) ([]domain.Accommodation, error) {
	if !policy.CanHost(actor) {
		return nil, ErrForbidden
	}
	return s.listings.ListByOwner(ctx, actor.ID)
}

// ListPending returns the moderation queue.
func (s *Service) ListPending(ctx context.Context, actor policy.Subject) ([]domain.Accommodation, error) {
	if !policy.CanModerate(actor) {
		return nil, ErrForbidden
	}
	return s.listings.ListByStatus(ctx, domain.ListingPendingReview)
}
