package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Allocation errors
var (
	// ErrConfigMissing means no quota configuration document exists; a
	// generation run aborts entirely with no partial output.
	ErrConfigMissing = errors.New("merit list configuration not found")
	// ErrNoEligibleApplicants means zero accepted admissions exist overall.
	// Per-department emptiness is not an error and is silently skipped.
	ErrNoEligibleApplicants = errors.New("no accepted admissions to allocate")
)

// Lifecycle errors
var (
	// ErrInvalidTransition rejects a lifecycle transition attempted from the
	// wrong source state or by an unauthorized actor; the list is unchanged.
	ErrInvalidTransition = errors.New("invalid merit list transition")
)

// Hostel scope errors
var (
	ErrUnknownHostelKey = errors.New("unknown hostel key")
)

// Admission errors
var (
	ErrAdmissionNotFound = errors.New("admission not found")
	ErrEnrollmentExists  = errors.New("enrollment already has an application")
)

// Merit list errors
var (
	ErrMeritListNotFound = errors.New("merit list not found")
)

// Staff errors
var (
	ErrStaffNotFound = errors.New("staff account not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewConflictError creates a new custom error for compare-and-set losers
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
