package types

// APIResponse is the unified response envelope for all API endpoints.
// Exactly one of Message or Error is set, keyed by Success.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse builds a success envelope with a human-readable message.
func SuccessResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

// ErrorResponse builds a failure envelope.
func ErrorResponse(errMsg string) APIResponse {
	return APIResponse{Success: false, Error: errMsg}
}

// ErrorResponseWithDetails builds a failure envelope carrying extra
// operator-facing detail.
func ErrorResponseWithDetails(errMsg string, details interface{}) APIResponse {
	return APIResponse{Success: false, Error: errMsg, Details: details}
}
