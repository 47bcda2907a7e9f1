package admin

import "errors"

var (
	ErrSelfDemotion = errors.New("admin cannot revoke their own admin role")
	ErrForbidden    = errors.New("admin role required")
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("user not found")
)
