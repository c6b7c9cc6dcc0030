package infra

import (
	"testing"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReceiptPDF(t *testing.T) {
	booking := &model.Booking{
		ID:             uuid.New(),
		CourtNumber:    2,
		CustomerName:   "Ana Torres",
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:      "18:00",
		EndTime:        "19:30",
		BasePrice:      decimal.NewFromInt(60),
		ExtraHours:     decimal.NewFromInt(1),
		ExtraHourPrice: decimal.NewFromInt(20),
		Sales: []model.Sale{
			{
				Quantity:  2,
				UnitPrice: decimal.NewFromFloat(2.50),
				Total:     decimal.NewFromInt(5),
				InventoryItem: &model.InventoryItem{
					Name: "Water Bottle",
					SKU:  "BEV-001",
				},
			},
		},
	}

	pdf, err := GenerateBookingReceiptPDF(booking, "PadelBridge Club")
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateBookingReceiptPDFNoSales(t *testing.T) {
	booking := &model.Booking{
		ID:           uuid.New(),
		CourtNumber:  1,
		CustomerName: "Luis Marin",
		Date:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:    "10:00",
		EndTime:      "11:00",
		BasePrice:    decimal.NewFromInt(45),
	}

	pdf, err := GenerateBookingReceiptPDF(booking, "PadelBridge Club")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
