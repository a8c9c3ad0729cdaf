package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the key for the request ID in the Gin context
const ContextKeyRequestID = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID for log correlation. An
// incoming X-Request-ID from a trusted proxy is kept; otherwise a fresh
// UUID is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// GetRequestID extracts the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyRequestID)
	if s, ok := id.(string); ok {
		return s
	}
	return ""
}
