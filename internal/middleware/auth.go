package middleware

import (
	"net/http"
	"strings"

	"stayhub/internal/domain"
	jwtsvc "stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/response"
	"stayhub/internal/policy"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores the claims in the request
// context. The claims are the authorization subject: whatever "acting
// mode" the client believes it is in, decisions are made from these
// server-issued fields only.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Set("status", claims.Status)
		c.Set("can_book", claims.CanBook)
		c.Set("can_host", claims.CanHost)

		c.Next()
	}
}

// Subject rebuilds the policy subject from the context keys Auth set.
func Subject(c *gin.Context) policy.Subject {
	return policy.Subject{
		ID:       c.GetInt64("user_id"),
		Username: c.GetString("username"),
		Role:     domain.UserRole(c.GetString("role")),
		Status:   domain.UserStatus(c.GetString("status")),
		CanBook:  c.GetBool("can_book"),
		CanHost:  c.GetBool("can_host"),
	}
}
