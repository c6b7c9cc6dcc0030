package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Court is a bookable padel court. CourtNumber is the human-facing identifier
// bookings reference; it stays unique across the venue.
type Court struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	CourtNumber int       `gorm:"uniqueIndex;not null"`
	BasePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description *string
	IsActive    bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
