package auth

import (
	"context"
	"errors"
	"strings"

	"stayhub/internal/domain"
	"stayhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains registration, login and the role promotion flow.
type Service struct {
	users UserRepository
	jwt   tokenIssuer
}

func NewService(users UserRepository, jwt tokenIssuer) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

// Register creates a tourist account: active, allowed to book, not yet
// allowed to host.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         domain.RoleTourist,
		Status:       domain.UserActive,
		CanBook:      true,
		CanHost:      false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.session(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile renames the account and reissues the token so the
// claims follow the new username.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*SessionResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Username = strings.TrimSpace(req.Username)
	user.Phone = req.Phone

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.session(user)
}

// BecomeHost grants hosting. Idempotent: reapplying on a user who can
// already host is a no-op, not an error. Admins keep their role and
// only gain the can_host flag.
func (s *Service) BecomeHost(ctx context.Context, userID int64) (*SessionResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	switch {
	case user.Role == domain.RoleAdmin && user.CanHost:
		// already host-equivalent
	case user.Role == domain.RoleHost && user.CanHost:
		// already a host
	default:
		if user.Role != domain.RoleAdmin {
			user.Role = domain.RoleHost
		}
		user.CanHost = true
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.session(user)
}

func (s *Service) session(user *domain.User) (*SessionResponse, error) {
	token, err := s.jwt.GenerateToken(
		user.ID,
		user.Username,
		string(user.Role),
		string(user.Status),
		user.CanBook,
		user.CanHost,
	)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SessionResponse{Token: token, User: user}, nil
}
