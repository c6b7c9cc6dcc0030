package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,oneof=BEVERAGE_SNACK EQUIPMENT_RENTAL PRO_SHOP"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"omitempty,min=2,max=100"`
	Type string `json:"type" validate:"omitempty,oneof=BEVERAGE_SNACK EQUIPMENT_RENTAL PRO_SHOP"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	ItemCount int64  `json:"item_count"`
}
