package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with an id for log correlation, keeping a
// caller-supplied one when present.
func RequestID(ctx *gin.Context) {
	rid := ctx.Request.Header.Get(RequestIDHeader)
	if rid == "" {
		rid = uuid.NewString()
	}
	ctx.Set("request_id", rid)
	ctx.Writer.Header().Set(RequestIDHeader, rid)
}
