package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCourtRequest struct {
	Name        string          `json:"name"         validate:"required,min=2,max=100"`
	CourtNumber int             `json:"court_number" validate:"required,min=1"`
	BasePrice   decimal.Decimal `json:"base_price"   validate:"min=0"`
	Description *string         `json:"description"`
	IsActive    *bool           `json:"is_active"`
}

type UpdateCourtRequest struct {
	Name        *string          `json:"name"         validate:"omitempty,min=2,max=100"`
	CourtNumber *int             `json:"court_number" validate:"omitempty,min=1"`
	BasePrice   *decimal.Decimal `json:"base_price"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CourtResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CourtNumber  int             `json:"court_number"`
	BasePrice    decimal.Decimal `json:"base_price"`
	Description  *string         `json:"description,omitempty"`
	IsActive     bool            `json:"is_active"`
	BookingCount int64           `json:"booking_count"`
}
