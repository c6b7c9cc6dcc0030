package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a sellable or rentable article. For non-rental items
// Quantity tracks units on hand and never goes negative; rental items keep a
// nominal quantity that sales do not touch (revenue tracking only).
type InventoryItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"index;not null"`
	SKU        string    `gorm:"column:sku;uniqueIndex;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null;default:0"`
	CostPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SellPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// MinStock is the reorder threshold; at or below it a restock alert fires.
	MinStock  int  `gorm:"not null;default:5"`
	IsRental  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Category *InventoryCategory `gorm:"foreignKey:CategoryID"`
}
