// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when a request carries no authentication token.
	ErrMissingToken = errors.New("missing authentication token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010001"
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-010002"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010003"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010004"
	ErrCodeMissingAuthFields  AuthErrorCode = "AUT-010005"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUT-020001"
	ErrCodeMissingToken AuthErrorCode = "AUT-020002"

	// Rate limiting errors (03XXXX)
	ErrCodeTooManyAttempts AuthErrorCode = "AUT-030001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
