package middleware

import "github.com/gin-gonic/gin"

// CORS allows any origin. Front-door CORS policy is explicitly out of scope
// for this service (spec.md §1 puts the gateway outside this boundary) so
// this middleware stays inert rather than enforcing an origin allowlist this
// repository has no configuration surface for. Grounded on bookings-api's
// internal/middleware/cors.go.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Max-Age", "43200")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
