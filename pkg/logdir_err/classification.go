// pkg/logdir_err/classification.go
//
// Error classification with exit codes and remediation hints.

package logdir_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryValidation - Input validation failures (exit 2)
	CategoryValidation
	// CategoryNotFound - No usable result for the request (exit 1)
	CategoryNotFound
	// CategoryInternal - Bugs in logdir itself (exit 3)
	CategoryInternal
	// CategoryPermission - Permission denied (exit 1)
	CategoryPermission
)

func (c ErrorCategory) String() string {
	switch c {
	case CategorySystem:
		return "system"
	case CategoryValidation:
		return "validation"
	case CategoryNotFound:
		return "not_found"
	case CategoryInternal:
		return "internal"
	case CategoryPermission:
		return "permission"
	default:
		return "unknown"
	}
}

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string
}

// Error implements the error interface
func (e *ClassifiedError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf("\n\nCause: %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error
func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error category
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryInternal:
		return 3
	default:
		return 1
	}
}

// GetExitCode extracts exit code from any error.
// Returns 0 for nil, the category code for classified errors, 1 for others.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	return 1
}

// CategoryOf returns the category of a classified error, or CategorySystem.
func CategoryOf(err error) ErrorCategory {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return CategorySystem
}

// NewValidationError creates an error for input validation failures
func NewValidationError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryValidation,
		Message:     message,
		Remediation: remediation,
	}
}

// NewNotFoundError creates an error for a request that produced no result
func NewNotFoundError(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryNotFound,
		Message:     message,
		Remediation: remediation,
	}
}

// NewFilesystemError creates an error for filesystem issues
func NewFilesystemError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategorySystem,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewPermissionError creates an error for permission issues
func NewPermissionError(resource, operation string, remediation ...string) error {
	return &ClassifiedError{
		Category: CategoryPermission,
		Message: fmt.Sprintf("Permission denied: cannot %s %s",
			operation, resource),
		Remediation: remediation,
	}
}

// NewInternalError creates an error for logdir bugs
func NewInternalError(message string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInternal,
		Message:  message,
		Cause:    cause,
		Remediation: []string{
			"This is likely a bug in logdir",
			"Include this error message and steps to reproduce when reporting it",
		},
	}
}
