package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequireJSON rejects requests whose body is not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		contentType := ctx.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Message: "incorrect body type, should be a json",
			})
			return
		}
		ctx.Next()
	}
}

// RequestID assigns a correlation id to each request unless the client
// already supplied one, and reflects it in the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set("requestID", requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}
