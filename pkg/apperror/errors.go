package apperror

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
	ErrEmptyCart      = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cart is empty"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// CatalogUnavailableError signals that the product catalog could not be
// reached. Cart lines already priced keep their frozen snapshot and remain
// usable; only operations needing fresh catalog data fail with this.
type CatalogUnavailableError struct {
	Err error
}

func (e *CatalogUnavailableError) Error() string {
	return "catalog unavailable: " + e.Err.Error()
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

// NewCatalogUnavailable wraps a catalog read failure
func NewCatalogUnavailable(err error) *CatalogUnavailableError {
	return &CatalogUnavailableError{Err: err}
}

// SaleCreationFailedError signals that creating the sale row failed. Nothing
// was persisted; checkout is safe to retry from scratch.
type SaleCreationFailedError struct {
	Err error
}

func (e *SaleCreationFailedError) Error() string {
	return "sale creation failed: " + e.Err.Error()
}

func (e *SaleCreationFailedError) Unwrap() error {
	return e.Err
}

// NewSaleCreationFailed wraps a step-A checkout failure
func NewSaleCreationFailed(err error) *SaleCreationFailedError {
	return &SaleCreationFailedError{Err: err}
}

// PartialCheckoutError signals that the sale row was created but inserting
// its items failed. It carries the assigned sale id so the caller can retry
// item insertion for that sale or roll the sale back. It must never be
// presented as a plain "please retry" failure: retrying checkout from
// scratch would duplicate the sale row.
type PartialCheckoutError struct {
	SaleID uuid.UUID
	Err    error
}

func (e *PartialCheckoutError) Error() string {
	return "partial checkout: sale " + e.SaleID.String() + " has no items: " + e.Err.Error()
}

func (e *PartialCheckoutError) Unwrap() error {
	return e.Err
}

// NewPartialCheckout wraps a step-B checkout failure with the created sale id
func NewPartialCheckout(saleID uuid.UUID, err error) *PartialCheckoutError {
	return &PartialCheckoutError{SaleID: saleID, Err: err}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
