package domain

import "time"

type UserRole string

const (
	RoleTourist UserRole = "tourist"
	RoleHost    UserRole = "host"
	RoleAdmin   UserRole = "admin"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// User carries a structural role plus independent capability flags.
// Role and flags are deliberately separate: an account may keep
// role=host while can_host is switched off by an admin.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username" validate:"required"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	CanBook      bool       `json:"can_book"`
	CanHost      bool       `json:"can_host"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
