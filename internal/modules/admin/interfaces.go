package admin

import (
	"context"

	"stayhub/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateAccess(ctx context.Context, id int64, role domain.UserRole, status domain.UserStatus, canBook, canHost bool) error
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

type ListingCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error)
}
