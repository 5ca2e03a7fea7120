package errors

import (
	"github.com/sirupsen/logrus"
)

// ErrorHandler logs analysis errors and maps them to process exit codes.
type ErrorHandler struct {
	logger *logrus.Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle logs an error with its context and returns the exit code the
// process should terminate with.
func (h *ErrorHandler) Handle(err error) int {
	// Convert to AppError if it's not already
	var appErr *AppError
	var ok bool

	if appErr, ok = GetAppError(err); !ok {
		appErr = WrapInternalError(err, "An unexpected error occurred")
	}

	logEntry := h.logger.WithFields(logrus.Fields{
		"error_type": appErr.Type,
		"error_code": appErr.Code,
	})
	for k, v := range appErr.Details {
		logEntry = logEntry.WithField(k, v)
	}

	// Log at appropriate level
	switch appErr.Type {
	case ErrorTypeInternal, ErrorTypeOutputWrite:
		logEntry.Error(appErr.Error())
	default:
		// Input validation problems are the caller's fault
		logEntry.Warn(appErr.Error())
	}

	return 1
}
