package errors

import (
	"fmt"
)

// ErrorType represents the type of error.
type ErrorType string

const (
	ErrorTypeInvalidHeader    ErrorType = "INVALID_HEADER"
	ErrorTypeMalformedRow     ErrorType = "MALFORMED_ROW"
	ErrorTypeNonMonotonic     ErrorType = "NON_MONOTONIC_TIMESTAMP"
	ErrorTypeInsufficientData ErrorType = "INSUFFICIENT_DATA"
	ErrorTypeMarginOutOfRange ErrorType = "MARGIN_OUT_OF_RANGE"
	ErrorTypeOutputWrite      ErrorType = "OUTPUT_WRITE_FAILURE"
	ErrorTypeInternal         ErrorType = "INTERNAL_ERROR"
)

// AppError represents an application error with additional context.
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// WithCode adds an error code.
func (e *AppError) WithCode(code string) *AppError {
	e.Code = code
	return e
}

// New creates a new AppError.
func New(errType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
	}
}

// Wrap wraps an existing error.
func Wrap(err error, errType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Common error constructors.

// NewInvalidHeaderError creates an error for an unexpected trace header row.
func NewInvalidHeaderError(file string, header []string) *AppError {
	return New(ErrorTypeInvalidHeader, "unexpected trace headers").WithDetails(map[string]interface{}{
		"file":   file,
		"header": header,
	})
}

// NewMalformedRowError wraps a parse failure for a trace data row.
func NewMalformedRowError(err error, file string, row int) *AppError {
	return Wrap(err, ErrorTypeMalformedRow, fmt.Sprintf("malformed trace row %d", row)).WithDetails(map[string]interface{}{
		"file": file,
		"row":  row,
	})
}

// NewNonMonotonicError creates an error for a non-increasing frame timestamp.
func NewNonMonotonicError(frameIndex int, frameTimeMS float64) *AppError {
	return New(ErrorTypeNonMonotonic,
		fmt.Sprintf("frame %d has non-positive frame time %.3f ms", frameIndex, frameTimeMS)).WithDetails(map[string]interface{}{
		"frame_index":   frameIndex,
		"frame_time_ms": frameTimeMS,
	})
}

// NewInsufficientDataError creates an error for a trace with too few samples.
func NewInsufficientDataError(sampleCount int) *AppError {
	return New(ErrorTypeInsufficientData,
		fmt.Sprintf("trace has %d samples, need at least 2", sampleCount)).WithDetails(map[string]interface{}{
		"sample_count": sampleCount,
	})
}

// NewMarginOutOfRangeError creates an error for a stutter margin outside its open interval.
func NewMarginOutOfRangeError(marginMS, minMS, maxMS float64) *AppError {
	return New(ErrorTypeMarginOutOfRange,
		fmt.Sprintf("stutter margin %.3f ms must be on ]%.2f, %.1f[", marginMS, minMS, maxMS)).WithDetails(map[string]interface{}{
		"margin_ms": marginMS,
		"min_ms":    minMS,
		"max_ms":    maxMS,
	})
}

// WrapOutputWriteError wraps a failure to write an output artifact.
func WrapOutputWriteError(err error, path string) *AppError {
	return Wrap(err, ErrorTypeOutputWrite, fmt.Sprintf("failed to write %s", path)).WithDetails(map[string]interface{}{
		"path": path,
	})
}

// NewInternalError creates an internal error.
func NewInternalError(message string) *AppError {
	return New(ErrorTypeInternal, message)
}

// WrapInternalError wraps an error as an internal error.
func WrapInternalError(err error, message string) *AppError {
	return Wrap(err, ErrorTypeInternal, message)
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts AppError from an error.
func GetAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

// IsType checks whether an error is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Type == errType
}
