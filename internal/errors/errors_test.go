package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInvalidInput,
				Message: "invalid tags input",
				Cause:   errors.New("unexpected character"),
			},
			expected: "invalid tags input: unexpected character",
		},
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeInternalError,
				Message: "ECS client not configured",
			},
			expected: "ECS client not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := ErrInternalError("something went wrong", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrInvalidConfig("bad config", nil))

	assert.ErrorIs(t, err, &AppError{Code: ErrCodeInvalidConfig})
	assert.NotErrorIs(t, err, &AppError{Code: ErrCodeAPIError})
	assert.False(t, (&AppError{}).Is(&AppError{}), "empty codes never match")
}

func TestErrAPI(t *testing.T) {
	t.Run("with AWS error code", func(t *testing.T) {
		cause := &smithy.GenericAPIError{Code: "ClusterNotFoundException", Message: "Cluster not found."}
		err := ErrAPI("ECS.ListTasks", cause)

		assert.Equal(t, ErrCodeAPIError, err.Code)
		assert.Equal(t, "ECS.ListTasks failed (ClusterNotFoundException)", err.Message)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without AWS error code", func(t *testing.T) {
		err := ErrAPI("ECS.DescribeTasks", errors.New("connection reset"))

		assert.Equal(t, "ECS.DescribeTasks failed", err.Message)
		assert.Equal(t, "ECS.DescribeTasks failed: connection reset", err.Error())
	})
}

func TestAPIErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "smithy API error",
			err:      &smithy.GenericAPIError{Code: "ThrottlingException"},
			expected: "ThrottlingException",
		},
		{
			name:     "wrapped smithy API error",
			err:      fmt.Errorf("call failed: %w", &smithy.GenericAPIError{Code: "AccessDeniedException"}),
			expected: "AccessDeniedException",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: "",
		},
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, APIErrorCode(tt.err))
		})
	}
}

func TestGetErrorHelpers(t *testing.T) {
	cause := errors.New("root cause")
	appErr := ErrInvalidInput("invalid input", cause)
	plain := errors.New("plain error")

	require.Equal(t, ErrCodeInvalidInput, GetErrorCode(appErr))
	assert.Equal(t, "", GetErrorCode(plain))

	assert.Equal(t, "invalid input", GetErrorMessage(appErr))
	assert.Equal(t, "plain error", GetErrorMessage(plain))

	assert.Equal(t, "root cause", GetErrorDetails(appErr))
	assert.Equal(t, "no cause", GetErrorDetails(ErrInternalError("no cause", nil)))
	assert.Equal(t, "plain error", GetErrorDetails(plain))
}
