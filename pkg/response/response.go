package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// ErrorWithStatus sends an error response with an explicit HTTP status.
func ErrorWithStatus(c *gin.Context, status int, message string, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   message,
		Data:      data,
	})
}

// TooManyRequests sends 429 with a retry-after hint in milliseconds.
func TooManyRequests(c *gin.Context, message string, retryAfterMs int64) {
	c.JSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   message,
		Data:      map[string]interface{}{"retry_after_ms": retryAfterMs},
	})
}

// InternalError sends 500 with a caller-facing message and optional detail.
// The raw error never reaches the client; log it at the call site.
func InternalError(c *gin.Context, message string, data map[string]interface{}) {
	if message == "" {
		message = DefaultErrorMessage
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   message,
		Data:      data,
	})
}
