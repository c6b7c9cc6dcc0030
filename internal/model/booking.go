package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking statuses. ACTIVE is the only state that accepts sales or extra
// hours; COMPLETED and CANCELLED are terminal.
const (
	BookingActive    = "ACTIVE"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

// Booking is a court reservation and the accrual point for everything the
// customer owes: court time, extra hours, and itemized sales.
type Booking struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CourtNumber   int       `gorm:"not null;index"`
	CustomerName  string    `gorm:"not null"`
	CustomerPhone *string
	Date          time.Time `gorm:"not null;index"`
	StartTime     string    `gorm:"not null"` // "HH:MM"
	EndTime       string    `gorm:"not null"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// ExtraHours accumulates; ExtraHourPrice is a single scalar holding the
	// latest rate, so earlier extra hours re-price when the rate changes.
	ExtraHours     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ExtraHourPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Status         string          `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	Notes          *string
	CreatedByID    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	CreatedBy *User  `gorm:"foreignKey:CreatedByID"`
	Sales     []Sale `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// TotalCost returns basePrice + extraHours*extraHourPrice + the sum of sale
// totals. Sales must be preloaded.
func (b *Booking) TotalCost() decimal.Decimal {
	total := b.BasePrice.Add(b.ExtraHours.Mul(b.ExtraHourPrice))
	for _, s := range b.Sales {
		total = total.Add(s.Total)
	}
	return total
}
