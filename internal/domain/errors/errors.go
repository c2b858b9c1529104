package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrConfigMissing      = errors.New("required configuration missing")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrTokenNotFound      = errors.New("token not found in balance listing")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrProviderFailure    = errors.New("wallet provider request failed")
	ErrWalletRejected     = errors.New("transfer rejected by wallet")
)

// Error codes returned in API responses
const (
	CodeNotFound          = "ERR_NOT_FOUND"
	CodeConflict          = "ERR_CONFLICT"
	CodeInvalidInput      = "ERR_INVALID_INPUT"
	CodeBadRequest        = "ERR_BAD_REQUEST"
	CodeUnauthorized      = "ERR_UNAUTHORIZED"
	CodeForbidden         = "ERR_FORBIDDEN"
	CodeConfiguration     = "ERR_CONFIGURATION"
	CodeInsufficientFunds = "ERR_INSUFFICIENT_FUNDS"
	CodeProviderFailure   = "ERR_PROVIDER"
	CodeWalletRejected    = "ERR_WALLET_REJECTED"
	CodeInternalError     = "ERR_INTERNAL"
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

// WalletNotFound is a NotFound variant that keeps the wallet sentinel in the
// chain for errors.Is checks.
func WalletNotFound() *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, "wallet not found", ErrWalletNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

// Configuration signals a missing or invalid server-side setting, e.g. the
// destination address or the provider token id.
func Configuration(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeConfiguration, message, ErrConfigMissing)
}

func InsufficientFunds(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInsufficientFunds, message, ErrInsufficientFunds)
}

// ProviderError signals a failed call to the custodial wallet provider.
func ProviderError(message string, err error) *AppError {
	if err == nil {
		err = ErrProviderFailure
	}
	return NewAppError(http.StatusBadGateway, CodeProviderFailure, message, err)
}

func WalletRejected(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeWalletRejected, message, ErrWalletRejected)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

func InternalServerError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, message, nil)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    CodeBadRequest,
		Message: message,
		Err:     err,
	}
}
