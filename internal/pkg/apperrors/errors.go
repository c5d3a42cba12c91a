package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrRecordNotFound     = errors.New("record not found")
	ErrFacultyNotFound    = errors.New("faculty not found")
	ErrDepartmentNotFound = errors.New("department not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountNotApproved = errors.New("account pending approval")

	// Authorization errors
	ErrNotRecordOwner   = errors.New("record belongs to another faculty")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Faculty account errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Export errors
var (
	ErrNoExportData    = errors.New("no data found for the given filters")
	ErrNoExportColumns = errors.New("export requires at least one column")
)

// CustomError carries an underlying sentinel together with a request-specific
// message. HandleAPIError unwraps it to pick the HTTP status while the message
// reaches the client.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrRecordNotFound, Message: message}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
