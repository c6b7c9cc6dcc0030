package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateBookingRequest struct {
	CourtNumber   int     `json:"court_number"   validate:"required,min=1"`
	CustomerName  string  `json:"customer_name"  validate:"required,min=2,max=100"`
	CustomerPhone *string `json:"customer_phone"`
	Date          string  `json:"date"           validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"start_time"     validate:"required"`
	EndTime       string  `json:"end_time"       validate:"required"`
	// BasePrice defaults to the court's base price when omitted.
	BasePrice *decimal.Decimal `json:"base_price"`
	Notes     *string          `json:"notes"`
}

type UpdateBookingRequest struct {
	CourtNumber   *int             `json:"court_number"   validate:"omitempty,min=1"`
	CustomerName  *string          `json:"customer_name"  validate:"omitempty,min=2,max=100"`
	CustomerPhone *string          `json:"customer_phone"`
	Date          *string          `json:"date"           validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string          `json:"start_time"`
	EndTime       *string          `json:"end_time"`
	BasePrice     *decimal.Decimal `json:"base_price"`
	Notes         *string          `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE COMPLETED CANCELLED"`
	// CustomerEmail, when present on completion, receives the receipt PDF.
	CustomerEmail *string `json:"customer_email" validate:"omitempty,email"`
}

type AddExtraHoursRequest struct {
	Hours        decimal.Decimal `json:"hours"          validate:"required"`
	PricePerHour decimal.Decimal `json:"price_per_hour" validate:"min=0"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type BookingFilter struct {
	Status   string `form:"status" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to"   validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BookingSaleResponse struct {
	ID        string          `json:"id"`
	Item      string          `json:"item"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	IsRental  bool            `json:"is_rental"`
	CreatedAt string          `json:"created_at"`
}

type BookingResponse struct {
	ID             string                `json:"id"`
	CourtNumber    int                   `json:"court_number"`
	CustomerName   string                `json:"customer_name"`
	CustomerPhone  *string               `json:"customer_phone,omitempty"`
	Date           string                `json:"date"`
	StartTime      string                `json:"start_time"`
	EndTime        string                `json:"end_time"`
	BasePrice      decimal.Decimal       `json:"base_price"`
	ExtraHours     decimal.Decimal       `json:"extra_hours"`
	ExtraHourPrice decimal.Decimal       `json:"extra_hour_price"`
	Status         string                `json:"status"`
	Notes          *string               `json:"notes,omitempty"`
	CreatedBy      string                `json:"created_by"`
	Sales          []BookingSaleResponse `json:"sales"`
	TotalCost      decimal.Decimal       `json:"total_cost"`
	CreatedAt      string                `json:"created_at"`
}
