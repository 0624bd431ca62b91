package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizledger/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects request bodies larger than maxBytes. Declared sizes are
// rejected up front; chunked bodies are capped while reading.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			requestID, _ := c.Get(RequestIDKey)
			id, _ := requestID.(string)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge, "Request body too large", id))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
