package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddSaleRequest struct {
	BookingID       string `json:"booking_id"        validate:"required,uuid"`
	InventoryItemID string `json:"inventory_item_id" validate:"required,uuid"`
	Quantity        int    `json:"quantity"          validate:"required,min=1"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// SaleFilter bounds the sales history / summary. The upper bound is
// inclusive: the whole day is covered.
type SaleFilter struct {
	DateFrom string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"to"   validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleResponse struct {
	ID           string          `json:"id"`
	BookingID    string          `json:"booking_id"`
	CustomerName string          `json:"customer_name"`
	CourtNumber  int             `json:"court_number"`
	Item         string          `json:"item"`
	SKU          string          `json:"sku"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
	IsRental     bool            `json:"is_rental"`
	CreatedAt    string          `json:"created_at"`
}

// ─── Reports ─────────────────────────────────────────────────────────────────

type TopItemResponse struct {
	InventoryItemID string          `json:"inventory_item_id"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	Total           decimal.Decimal `json:"total"`
}

type SalesSummaryResponse struct {
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	TotalTransactions int64             `json:"total_transactions"`
	TopItems          []TopItemResponse `json:"top_items"`
}
