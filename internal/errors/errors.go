package errors

import "fmt"

// ErrorCode represents a caltrack error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"   // 404
	ErrInvalidActivity ErrorCode = "INVALID_ACTIVITY" // 422
	ErrCorruptSnapshot ErrorCode = "CORRUPT_SNAPSHOT" // 500
	ErrCancelled       ErrorCode = "CANCELLED"        // 499
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// CaltrackError represents a structured error with code, status, and details.
type CaltrackError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *CaltrackError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *CaltrackError {
	return &CaltrackError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when an activity cannot be found.
func NewNotFound(id string) *CaltrackError {
	return &CaltrackError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("activity not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewFileNotFound creates a 404 error for a missing import file.
func NewFileNotFound(path string) *CaltrackError {
	return &CaltrackError{
		Code:    ErrFileNotFound,
		Status:  404,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewInvalidActivity creates a 422 error for an activity that fails form validation.
func NewInvalidActivity(reason string) *CaltrackError {
	return &CaltrackError{
		Code:    ErrInvalidActivity,
		Status:  422,
		Message: fmt.Sprintf("invalid activity: %s", reason),
		Details: map[string]any{"reason": reason},
	}
}

// NewCorruptSnapshot creates a 500 error for a persisted snapshot that cannot be parsed.
func NewCorruptSnapshot(key string, err error) *CaltrackError {
	msg := fmt.Sprintf("stored snapshot %q is malformed", key)
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return &CaltrackError{
		Code:    ErrCorruptSnapshot,
		Status:  500,
		Message: msg,
		Details: map[string]any{"key": key},
	}
}

// NewCancelled creates a 499 error when an operation is cancelled.
func NewCancelled(operation string) *CaltrackError {
	return &CaltrackError{
		Code:    ErrCancelled,
		Status:  499,
		Message: fmt.Sprintf("%s cancelled", operation),
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *CaltrackError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &CaltrackError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a CaltrackError with the given code.
func Is(err error, code ErrorCode) bool {
	if cErr, ok := err.(*CaltrackError); ok {
		return cErr.Code == code
	}
	return false
}
