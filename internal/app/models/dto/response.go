package dto

// MessageResponse is the standard success envelope for operations that have
// nothing better to return
type MessageResponse struct {
	Message string `json:"message" example:"Record deleted"`
}

// ErrorResponse is the standard error body. Export failures additionally fill
// Error with the underlying cause.
type ErrorResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
	Error   string `json:"error,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
