package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const scopedChefKey = "scoped_chef_id"

// ChefScope gates chef-scoped routes: the :chefId path param must match the
// authenticated principal unless the principal is an admin. Runs after
// AuthMiddleware.
func ChefScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		chefID, err := uuid.Parse(c.Param("chefId"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid chef id"})
			return
		}

		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not authenticated"})
			return
		}

		if !principal.IsAdmin() && principal.ChefID != chefID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			return
		}

		c.Set(scopedChefKey, chefID)
		c.Next()
	}
}

// ScopedChefID returns the chef id validated by ChefScope.
func ScopedChefID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(scopedChefKey)
	id, _ := v.(uuid.UUID)
	return id
}
