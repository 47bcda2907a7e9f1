// Package policy holds the stateless authorization predicates evaluated
// before every state-changing operation. A Subject is built from the
// server-issued token claims; any client-side "acting mode" preference
// is never consulted here.
package policy

import "stayhub/internal/domain"

// Subject is the authenticated caller as the authorization layer sees it.
type Subject struct {
	ID       int64
	Username string
	Role     domain.UserRole
	Status   domain.UserStatus
	CanBook  bool
	CanHost  bool
}

// Action names an operation class for Evaluate.
type Action string

const (
	ActionBrowse   Action = "browse"
	ActionHost     Action = "host"
	ActionBook     Action = "book"
	ActionModerate Action = "moderate"
)

// CanBrowse is always true: approved listings are public.
func CanBrowse() bool { return true }

// CanHost requires the host (or admin) role and the can_host flag.
// The flag is independent of role so hosting can be suspended without
// demoting the account.
func CanHost(s Subject) bool {
	return (s.Role == domain.RoleHost || s.Role == domain.RoleAdmin) && s.CanHost
}

// CanBook requires an active account and the can_book flag.
func CanBook(s Subject) bool {
	return s.Status == domain.UserActive && s.CanBook
}

// CanModerate requires the admin role.
func CanModerate(s Subject) bool {
	return s.Role == domain.RoleAdmin
}

// OwnsListing reports whether s owns the accommodation.
func OwnsListing(s Subject, a *domain.Accommodation) bool {
	return a != nil && a.OwnerID == s.ID
}

// OwnsBooking reports whether s is the renter on the booking.
func OwnsBooking(s Subject, b *domain.Booking) bool {
	return b != nil && b.UserID == s.ID
}

// CanEditAccess guards admin access edits. An admin may not strip their
// own admin role: the sole self-demotion guard against locking every
// admin out of the system.
func CanEditAccess(admin Subject, targetID int64, newRole domain.UserRole) bool {
	if !CanModerate(admin) {
		return false
	}
	if targetID == admin.ID && newRole != domain.RoleAdmin {
		return false
	}
	return true
}

// Evaluate dispatches a generic (subject, action) decision. Ownership
// checks need the resource and stay with the specific predicates above.
func Evaluate(s Subject, action Action) bool {
	switch action {
	case ActionBrowse:
		return CanBrowse()
	case ActionHost:
		return CanHost(s)
	case ActionBook:
		return CanBook(s)
	case ActionModerate:
		return CanModerate(s)
	default:
		return false
	}
}
