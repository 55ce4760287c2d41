package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fantiss0511/MaliDiscover/pkg/auth"
)

// IdentifyUser resolves a Bearer token to a caller identity when one is
// present. It never aborts: anonymous requests reach the workflows, which
// decide whether authentication is required.
func IdentifyUser(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if claims, err := tokens.ParseValidate(strings.TrimPrefix(h, "Bearer ")); err == nil {
				c.Set("sub", claims.Sub)
				c.Set("role", claims.Role)
				c.Set("email", claims.Email)
			}
		}
		c.Next()
	}
}

// JWTAuth rejects requests that lack a valid token.
func JWTAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "utilisateur non connecté"})
			return
		}
		claims, err := tokens.ParseValidate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "utilisateur non connecté"})
			return
		}
		c.Set("sub", claims.Sub)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}
