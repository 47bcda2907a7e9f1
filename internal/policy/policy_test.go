package policy

import (
	"testing"

	"stayhub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanHost_RequiresRoleAndFlag(t *testing.T) {
	host := Subject{ID: 1, Role: domain.RoleHost, Status: domain.UserActive, CanHost: true}
	assert.True(t, CanHost(host))

	// role kept, privilege suspended
	host.CanHost = false
	assert.False(t, CanHost(host))

	tourist := Subject{ID: 2, Role: domain.RoleTourist, Status: domain.UserActive, CanHost: true}
	assert.False(t, CanHost(tourist))

	admin := Subject{ID: 3, Role: domain.RoleAdmin, CanHost: true}
	assert.True(t, CanHost(admin))
}

func TestCanBook_SuspendedAccountLosesBooking(t *testing.T) {
	s := Subject{ID: 1, Role: domain.RoleTourist, Status: domain.UserActive, CanBook: true}
	assert.True(t, CanBook(s))

	s.Status = domain.UserSuspended
	assert.False(t, CanBook(s), "suspension overrides can_book")

	s.Status = domain.UserActive
	s.CanBook = false
	assert.False(t, CanBook(s))
}

func TestCanEditAccess_SelfDemotionGuard(t *testing.T) {
	admin := Subject{ID: 7, Role: domain.RoleAdmin}

	assert.False(t, CanEditAccess(admin, 7, domain.RoleTourist))
	assert.True(t, CanEditAccess(admin, 7, domain.RoleAdmin))
	assert.True(t, CanEditAccess(admin, 8, domain.RoleTourist))

	notAdmin := Subject{ID: 9, Role: domain.RoleHost}
	assert.False(t, CanEditAccess(notAdmin, 8, domain.RoleTourist))
}

func TestOwnership(t *testing.T) {
	s := Subject{ID: 5}
	assert.True(t, OwnsListing(s, &domain.Accommodation{OwnerID: 5}))
	assert.False(t, OwnsListing(s, &domain.Accommodation{OwnerID: 6}))
	assert.False(t, OwnsListing(s, nil))

	assert.True(t, OwnsBooking(s, &domain.Booking{UserID: 5}))
	assert.False(t, OwnsBooking(s, &domain.Booking{UserID: 4}))
}

func TestEvaluate(t *testing.T) {
	admin := Subject{ID: 1, Role: domain.RoleAdmin, Status: domain.UserActive, CanBook: true, CanHost: true}
	tourist := Subject{ID: 2, Role: domain.RoleTourist, Status: domain.UserActive, CanBook: true}

	assert.True(t, Evaluate(tourist, ActionBrowse))
	assert.True(t, Evaluate(tourist, ActionBook))
	assert.False(t, Evaluate(tourist, ActionHost))
	assert.False(t, Evaluate(tourist, ActionModerate))
	assert.True(t, Evaluate(admin, ActionModerate))
	assert.False(t, Evaluate(admin, Action("unknown")))
}
