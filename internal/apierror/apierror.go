// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}

// ── Domain error taxonomy ─────────────────────────────────────────────────────
// Services wrap these sentinels (fmt.Errorf("%w: ...", apierror.ErrNotFound))
// so handlers can map any business failure to a status code without parsing
// message strings.

var (
	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: duplicate SKU / court number / email, last-admin deletion,
	// category still owning items, court with bookings, terminal booking.
	ErrConflict = errors.New("conflict")
	// ErrInsufficientStock: a sale would consume more units than are on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidAdjustment: a stock adjustment would leave quantity negative.
	ErrInvalidAdjustment = errors.New("invalid adjustment")
	// ErrInvalidInput: malformed or missing input detected past binding.
	ErrInvalidInput = errors.New("invalid input")
)

// Status maps a service error to its HTTP status code.
// Unrecognized errors are treated as internal.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAdjustment):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
