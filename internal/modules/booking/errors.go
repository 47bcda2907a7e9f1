package booking

import "errors"

var (
	ErrForbidden     = errors.New("not allowed to act on this booking")
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("booking or accommodation not found")
	ErrNotBookable   = errors.New("accommodation is not available for booking")
	ErrInvalidStatus = errors.New("booking status does not permit this transition")
	ErrOverlap       = errors.New("dates overlap an existing reservation")
)
