package admin

import (
	"context"
	"errors"

	"stayhub/internal/domain"
	"stayhub/internal/policy"

	"gorm.io/gorm"
)

type Service struct {
	users    UserRepository
	listings ListingCounter
}

func NewService(users UserRepository, listings ListingCounter) *Service {
	return &Service{
		users:    users,
		listings: listings,
	}
}

func (s *Service) ListUsers(ctx context.Context, actor policy.Subject) ([]domain.User, error) {
	if !policy.CanModerate(actor) {
		return nil, ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, actor policy.Subject, id int64) (*domain.User, error) {
	if !policy.CanModerate(actor) {
		return nil, ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateAccess rewrites a user's role, status and capability flags.
// The self-demotion guard fires before any write: an admin editing
// their own account must keep the admin role.
func (s *Service) UpdateAccess(ctx context.Context, actor policy.Subject, targetID int64, req UpdateAccessRequest) error {
	if !policy.CanModerate(actor) {
		return ErrForbidden
	}

	role := domain.UserRole(*req.Role)
	status := domain.UserStatus(*req.Status)

	switch role {
	case domain.RoleTourist, domain.RoleHost, domain.RoleAdmin:
	default:
		return ErrValidation
	}
	switch status {
	case domain.UserActive, domain.UserSuspended:
	default:
		return ErrValidation
	}

	if !policy.CanEditAccess(actor, targetID, role) {
		return ErrSelfDemotion
	}

	if err := s.users.UpdateAccess(ctx, targetID, role, status, *req.CanBook, *req.CanHost); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Dashboard(ctx context.Context, actor policy.Subject) (*DashboardStats, error) {
	if !policy.CanModerate(actor) {
		return nil, ErrForbidden
	}

	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.users.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalHosts, err = s.users.CountByRole(ctx, domain.RoleHost); err != nil {
		return nil, err
	}
	if stats.TotalListings, err = s.listings.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.PendingListings, err = s.listings.CountByStatus(ctx, domain.ListingPendingReview); err != nil {
		return nil, err
	}

	return stats, nil
}
