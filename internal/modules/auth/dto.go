package auth

import "stayhub/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// SessionResponse pairs the user with a freshly issued token. Any
// operation that changes the identity claims (register, login, profile
// rename, become-host) returns one so the client never holds stale
// claims longer than necessary.
type SessionResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
