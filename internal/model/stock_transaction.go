package model

import (
	"time"

	"github.com/google/uuid"
)

// Stock transaction types.
const (
	StockIn         = "IN"         // quantity added
	StockOut        = "OUT"        // quantity removed
	StockAdjustment = "ADJUSTMENT" // absolute set, not a delta
)

// StockTransaction is the append-only audit log of manual inventory quantity
// changes. Rows are immutable once committed.
type StockTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(20);not null"`
	// Quantity is the delta for IN/OUT and the absolute value for ADJUSTMENT.
	Quantity    int `gorm:"not null"`
	Notes       *string
	CreatedByID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"index"`

	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
	CreatedBy     *User          `gorm:"foreignKey:CreatedByID"`
}
