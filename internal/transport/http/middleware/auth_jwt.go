package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-tenant-user-api/internal/core/auth"
)

// AuthJWT resolves the acting user from the bearer token and stores the
// id under "userId" for handlers downstream.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			abortWithError(c, "Unauthenticated.")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			abortWithError(c, "Unauthenticated.")
			return
		}
		c.Set("claims", claims)
		c.Set("userId", claims.UID)
		c.Next()
	}
}
