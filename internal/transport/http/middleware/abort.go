package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// abortWithError short-circuits the request with a GraphQL-shaped errors
// array. Transport status stays 200; clients detect failure by the
// presence of "errors".
func abortWithError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusOK, gin.H{
		"errors": []gin.H{{
			"message":    message,
			"locations":  []gin.H{{"line": 1, "column": 1}},
			"extensions": gin.H{"category": "request"},
			"path":       []any{},
			"trace":      []any{},
		}},
	})
}
