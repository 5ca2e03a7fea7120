package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("New creates error correctly", func(t *testing.T) {
		err := New(ErrorTypeInvalidHeader, "unexpected trace headers")

		assert.Equal(t, ErrorTypeInvalidHeader, err.Type)
		assert.Equal(t, "unexpected trace headers", err.Message)
		assert.Equal(t, "INVALID_HEADER: unexpected trace headers", err.Error())
	})

	t.Run("Wrap wraps error correctly", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := Wrap(originalErr, ErrorTypeInternal, "Something went wrong")

		assert.Equal(t, ErrorTypeInternal, err.Type)
		assert.Equal(t, "Something went wrong", err.Message)
		assert.Equal(t, originalErr, err.Unwrap())
		assert.Contains(t, err.Error(), "original error")
	})

	t.Run("WithDetails adds details", func(t *testing.T) {
		err := New(ErrorTypeMalformedRow, "malformed trace row")
		details := map[string]interface{}{
			"file": "trace.csv",
			"row":  7,
		}
		_ = err.WithDetails(details)

		assert.Equal(t, details, err.Details)
	})

	t.Run("WithCode adds code", func(t *testing.T) {
		err := New(ErrorTypeMalformedRow, "malformed trace row")
		_ = err.WithCode("ERR_001")

		assert.Equal(t, "ERR_001", err.Code)
	})
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		fn       func() *AppError
		wantType ErrorType
	}{
		{
			name: "NewInvalidHeaderError",
			fn: func() *AppError {
				return NewInvalidHeaderError("trace.csv", []string{"Frames", "Time"})
			},
			wantType: ErrorTypeInvalidHeader,
		},
		{
			name: "NewMalformedRowError",
			fn: func() *AppError {
				return NewMalformedRowError(errors.New("bad float"), "trace.csv", 12)
			},
			wantType: ErrorTypeMalformedRow,
		},
		{
			name: "NewNonMonotonicError",
			fn: func() *AppError {
				return NewNonMonotonicError(42, -1.5)
			},
			wantType: ErrorTypeNonMonotonic,
		},
		{
			name: "NewInsufficientDataError",
			fn: func() *AppError {
				return NewInsufficientDataError(1)
			},
			wantType: ErrorTypeInsufficientData,
		},
		{
			name: "NewMarginOutOfRangeError",
			fn: func() *AppError {
				return NewMarginOutOfRangeError(0.05, 0.10, 10.1)
			},
			wantType: ErrorTypeMarginOutOfRange,
		},
		{
			name: "WrapOutputWriteError",
			fn: func() *AppError {
				return WrapOutputWriteError(errors.New("disk full"), "trace_fpa.csv")
			},
			wantType: ErrorTypeOutputWrite,
		},
		{
			name: "NewInternalError",
			fn: func() *AppError {
				return NewInternalError("boom")
			},
			wantType: ErrorTypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			assert.Equal(t, tt.wantType, err.Type)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestErrorContext(t *testing.T) {
	t.Run("malformed row carries file and row index", func(t *testing.T) {
		err := NewMalformedRowError(errors.New("bad float"), "frametimes.csv", 12)

		assert.Equal(t, "frametimes.csv", err.Details["file"])
		assert.Equal(t, 12, err.Details["row"])
		assert.Contains(t, err.Message, "12")
	})

	t.Run("non-monotonic carries frame index", func(t *testing.T) {
		err := NewNonMonotonicError(42, 0)

		assert.Equal(t, 42, err.Details["frame_index"])
		assert.Contains(t, err.Message, "42")
	})
}

func TestIsAppError(t *testing.T) {
	appErr := NewInsufficientDataError(0)
	stdErr := errors.New("plain")

	assert.True(t, IsAppError(appErr))
	assert.False(t, IsAppError(stdErr))

	got, ok := GetAppError(appErr)
	assert.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = GetAppError(stdErr)
	assert.False(t, ok)
}

func TestIsType(t *testing.T) {
	err := NewNonMonotonicError(3, 0)

	assert.True(t, IsType(err, ErrorTypeNonMonotonic))
	assert.False(t, IsType(err, ErrorTypeMalformedRow))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeInternal))
}
