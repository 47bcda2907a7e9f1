package listing

import "errors"

var (
	ErrForbidden      = errors.New("not allowed to manage this listing")
	ErrValidation     = errors.New("validation error")
	ErrNotFound       = errors.New("accommodation not found")
	ErrActiveBookings = errors.New("accommodation has pending or approved bookings")
)
