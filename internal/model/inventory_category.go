package model

import (
	"time"

	"github.com/google/uuid"
)

// Category types for InventoryCategory.Type.
const (
	CategoryBeverageSnack   = "BEVERAGE_SNACK"
	CategoryEquipmentRental = "EQUIPMENT_RENTAL"
	CategoryProShop         = "PRO_SHOP"
)

// InventoryCategory groups inventory items. A category cannot be deleted
// while it still owns items.
type InventoryCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Type      string    `gorm:"type:varchar(30);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []InventoryItem `gorm:"foreignKey:CategoryID"`
}

// TableName overrides GORM's default pluralization (inventory_categorys).
func (InventoryCategory) TableName() string { return "inventory_categories" }
