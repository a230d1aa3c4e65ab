package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/account-ledger/internal/domain/port/core"
)

// RequestIDHeader is the header carrying the request correlation ID
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request correlation ID
const RequestIDKey = "request_id"

// maxRequestIDLength bounds client-supplied IDs
const maxRequestIDLength = 128

// RequestID propagates the caller's X-Request-ID or generates one.
// The ID is echoed in the response and attached to the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}
