package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Wallet ledger (WAL) ----

const (
	CodeInvalidAmount       = "WAL_001"
	CodeInsufficientBalance = "WAL_002"
	CodeInvalidSymbol       = "WAL_003"
	CodeSameSymbolSwap      = "WAL_004"
	CodeInvalidPrice        = "WAL_005"
	CodeValidation          = "WAL_006"
)

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be a positive number of at most 30 digits and 18 decimals", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidSymbol() *AppError {
	return New(CodeInvalidSymbol, "Currency symbol is required", http.StatusBadRequest)
}

func ErrSameSymbolSwap() *AppError {
	return New(CodeSameSymbolSwap, "Cannot swap a currency into itself", http.StatusBadRequest)
}

func ErrInvalidPrice(symbol string) *AppError {
	if symbol == "" {
		return New(CodeInvalidPrice, "At least one price is required", http.StatusBadRequest)
	}
	return New(CodeInvalidPrice, fmt.Sprintf("Price for %s must be a positive number of at most 30 digits and 18 decimals", symbol), http.StatusBadRequest)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_002", "Wallet storage failure", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Snapshot encryption failure", http.StatusInternalServerError, err)
}
