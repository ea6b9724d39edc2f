package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			abortWithError(c, "request body too large")
		}
	}
}
