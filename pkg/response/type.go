package response

// Resp is the standard JSON response body. ErrorCode 0 means success; error
// responses reuse the HTTP status as the code.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
