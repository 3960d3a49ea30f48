package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymtrack/internal/services"
	"gymtrack/pkg/utils"
)

const identityKey = "identity"

// CredentialAuth resolves the caller's identity from the request
// credentials. There are no tokens or sessions; every request is
// re-validated against the members table. Credentials may arrive as
// HTTP Basic auth or as X-Username/X-Password headers.
func CredentialAuth(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			username = c.GetHeader("X-Username")
			password = c.GetHeader("X-Password")
		}

		if username == "" || password == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Missing credentials")
			c.Abort()
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin gates routes that only admins may reach. It assumes
// CredentialAuth already ran.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdmin() {
			utils.RespondError(c, http.StatusForbidden, "Admin required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (services.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return services.Identity{}, false
	}
	identity, ok := v.(services.Identity)
	return identity, ok
}
