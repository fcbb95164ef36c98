package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/types"
)

// AuthCookieName is the httpOnly cookie the login endpoint sets.
const AuthCookieName = "chef_token"

const principalKey = "principal"

// TokenValidator is an interface for validating JWT tokens
type TokenValidator interface {
	ValidateToken(token string) (*types.Principal, error)
}

// AuthMiddleware validates the request token and attaches the typed
// principal to the context. The token is read from the auth cookie, with an
// Authorization Bearer header accepted as fallback.
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authentication token"})
			return
		}

		principal, err := validator.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid or expired token"})
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentPrincipal returns the principal stored by AuthMiddleware.
func CurrentPrincipal(c *gin.Context) (types.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return types.Principal{}, false
	}
	p, ok := v.(types.Principal)
	return p, ok
}
