package handlers

import (
	"net/http"
	"strings"

	"lexipro-backend/models"
	"lexipro-backend/service"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticator verifies bearer tokens
type Authenticator interface {
	Authenticate(token string) (*service.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			return
		}

		ident, err := auth.Authenticate(strings.TrimSpace(token))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireRole rejects authenticated callers without the given role
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := currentIdentity(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			return
		}
		if ident.Role != role {
			respondError(c, http.StatusForbidden, "FORBIDDEN", "This resource requires the "+string(role)+" role")
			return
		}
		c.Next()
	}
}

func currentIdentity(c *gin.Context) (*service.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*service.Identity)
	return ident, ok && ident != nil
}
