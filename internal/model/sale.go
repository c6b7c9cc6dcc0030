package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale links an inventory item to a booking. UnitPrice and IsRental are
// snapshots taken at sale time: later price changes never alter a committed
// sale, and reversal uses the snapshot flag so flipping an item between
// rental and non-rental cannot corrupt stock restoration.
type Sale struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BookingID       uuid.UUID `gorm:"type:uuid;not null;index"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsRental        bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"index"`

	Booking       *Booking       `gorm:"foreignKey:BookingID"`
	InventoryItem *InventoryItem `gorm:"foreignKey:InventoryItemID"`
}
