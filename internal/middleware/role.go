package middleware

import (
	"net/http"

	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"

	"github.com/gin-gonic/gin"
)

// requireAction builds a gate that asks the policy dispatcher whether
// the authenticated subject may perform action. All role middleware
// funnels through here so policy.Evaluate stays the single
// authorization entry point.
func requireAction(action policy.Action, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Evaluate(Subject(c), action) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", message)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return requireAction(policy.ActionModerate, "Access denied: admin role required")
}

// HostOnly requires the host or admin role with hosting enabled.
// A host whose can_host flag was switched off is rejected even though
// the role is intact.
func HostOnly() gin.HandlerFunc {
	return requireAction(policy.ActionHost, "Access denied: hosting privileges required")
}

// CanBook requires an active account with booking enabled.
func CanBook() gin.HandlerFunc {
	return requireAction(policy.ActionBook, "Your account is suspended or booking is disabled")
}
