package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"amana-bookstore/internal/shared/response"
	"amana-bookstore/pkg/logger"
)

// Recovery converts a handler panic into the standard error envelope so one
// bad request cannot take the process down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorWith("panic recovered", fmt.Errorf("%v", rec), map[string]interface{}{
					"request_id": c.GetString("request_id"),
					"path":       c.Request.URL.Path,
				})
				response.InternalServerError(c, "internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
