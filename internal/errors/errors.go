package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDealNotFound is returned when a deal lookup matches no rows.
	ErrDealNotFound = errors.New("deal not found")
	// ErrVoucherNotFound is returned when a voucher lookup matches no rows.
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrUserNotFound is returned when a user lookup matches no rows.
	ErrUserNotFound = errors.New("user not found")
	// ErrMerchantNotFound is returned when a merchant name resolves to no row.
	ErrMerchantNotFound = errors.New("merchant not found")
	// ErrCategoryNotFound is returned when a category name resolves to no row.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("username or email already registered")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNoSavedItems is returned when a user's saved list is empty.
	ErrNoSavedItems = errors.New("no saved items found")
	// ErrKeyNotValid is returned when the caller-supplied API key mismatches.
	ErrKeyNotValid = errors.New("key not valid")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Database errors fall
// through to a generic 500 so their detail never reaches clients.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDealNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DEAL_NOT_FOUND")
	case errors.Is(err, ErrVoucherNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VOUCHER_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNoSavedItems):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_SAVED_ITEMS")
	case errors.Is(err, ErrMerchantNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MERCHANT_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrKeyNotValid):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "KEY_NOT_VALID")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
