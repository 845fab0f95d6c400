// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is invalid (zero or negative).
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContributionAmount is returned when a contribution amount is invalid.
	ErrInvalidContributionAmount = errors.New("invalid contribution amount")

	// ErrInvalidGoalCategory is returned when the goal category is invalid.
	ErrInvalidGoalCategory = errors.New("invalid goal category")

	// ErrInvalidGoalPriority is returned when the goal priority is invalid.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrInvalidGoalStatus is returned when the goal status is invalid.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound              GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount       GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContributionAmount GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalCategory       GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalPriority       GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalStatus         GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields         GoalErrorCode = "GOL-010007"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
