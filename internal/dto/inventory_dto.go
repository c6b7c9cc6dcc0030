package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	Name       string          `json:"name"        validate:"required,min=2,max=120"`
	SKU        string          `json:"sku"         validate:"required,min=2,max=60"`
	CategoryID string          `json:"category_id" validate:"required,uuid"`
	Quantity   int             `json:"quantity"    validate:"min=0"`
	CostPrice  decimal.Decimal `json:"cost_price"  validate:"min=0"`
	SellPrice  decimal.Decimal `json:"sell_price"  validate:"min=0"`
	MinStock   int             `json:"min_stock"   validate:"min=0"`
	IsRental   bool            `json:"is_rental"`
}

type UpdateItemRequest struct {
	Name       *string          `json:"name"        validate:"omitempty,min=2,max=120"`
	SKU        *string          `json:"sku"         validate:"omitempty,min=2,max=60"`
	CategoryID *string          `json:"category_id" validate:"omitempty,uuid"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
	SellPrice  *decimal.Decimal `json:"sell_price"`
	MinStock   *int             `json:"min_stock"   validate:"omitempty,min=0"`
	IsRental   *bool            `json:"is_rental"`
}

// AdjustStockRequest drives the IN/OUT/ADJUSTMENT operation. Quantity is a
// delta for IN/OUT and the absolute new value for ADJUSTMENT. Zero is legal:
// an ADJUSTMENT to 0 empties the shelf.
type AdjustStockRequest struct {
	Type     string  `json:"type"     validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ItemFilter struct {
	CategoryID string `form:"category_id"`
	Name       string `form:"name"`
	LowStock   bool   `form:"low_stock"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SellPrice decimal.Decimal `json:"sell_price"`
	MinStock  int             `json:"min_stock"`
	IsRental  bool            `json:"is_rental"`
	LowStock  bool            `json:"low_stock"`
}

type ItemListResponse struct {
	Data  []ItemResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type StockTransactionResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes,omitempty"`
	CreatedBy string  `json:"created_by"`
	CreatedAt string  `json:"created_at"`
}

// ItemDetailResponse includes the most recent audit trail entries.
type ItemDetailResponse struct {
	ItemResponse
	StockTransactions []StockTransactionResponse `json:"stock_transactions"`
}

// PriceCheckResponse is returned by the public SKU price endpoint.
type PriceCheckResponse struct {
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Available int             `json:"available"`
	Category  string          `json:"category"`
	IsRental  bool            `json:"is_rental"`
}
