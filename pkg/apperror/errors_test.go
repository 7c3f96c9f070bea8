package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_002", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[WAL_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_002", "Storage failure", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_002] Storage failure: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("withdraw: %w", ErrInsufficientBalance())

	assert.True(t, HasCode(wrapped, CodeInsufficientBalance))
	assert.False(t, HasCode(wrapped, CodeInvalidAmount))
	assert.False(t, HasCode(errors.New("plain"), CodeInvalidAmount))
	assert.False(t, HasCode(nil, CodeInvalidAmount))
}

func TestWalletErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "WAL_001", 400},
		{"InsufficientBalance", ErrInsufficientBalance(), "WAL_002", 402},
		{"InvalidSymbol", ErrInvalidSymbol(), "WAL_003", 400},
		{"SameSymbolSwap", ErrSameSymbolSwap(), "WAL_004", 400},
		{"InvalidPrice", ErrInvalidPrice("BTC"), "WAL_005", 400},
		{"Validation", Validation("bad body"), "WAL_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvalidPrice_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPrice("ETH").Message, "ETH")
	assert.Equal(t, "At least one price is required", ErrInvalidPrice("").Message)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("redis: connection closed")

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.Equal(t, 500, internal.HTTPStatus)
	assert.True(t, errors.Is(internal, inner))

	storeErr := ErrStorageFailure(inner)
	assert.Equal(t, "SYS_002", storeErr.Code)
	assert.True(t, errors.Is(storeErr, inner))

	encErr := ErrEncryptionFailure(inner)
	assert.Equal(t, "SYS_003", encErr.Code)
	assert.Equal(t, 500, encErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
