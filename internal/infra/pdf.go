package infra

import (
	"bytes"
	"fmt"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerateBookingReceiptPDF renders an A5 receipt for a completed booking:
// court charge, extra hours, itemized sales, grand total. Sales must be
// preloaded with their items.
func GenerateBookingReceiptPDF(b *model.Booking, venueName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, venueName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Booking receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Receipt: %s", shortID(b.ID.String())), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Customer: %s", b.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Court %d  |  %s  %s-%s",
		b.CourtNumber, b.Date.Format("2006-01-02"), b.StartTime, b.EndTime), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(70, 6, "Concept", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	receiptLine(pdf, "Court time", "1", b.BasePrice, b.BasePrice)

	if b.ExtraHours.IsPositive() {
		extraTotal := b.ExtraHours.Mul(b.ExtraHourPrice)
		receiptLine(pdf, "Extra hours", b.ExtraHours.String(), b.ExtraHourPrice, extraTotal)
	}

	for i := range b.Sales {
		sale := &b.Sales[i]
		name := "Item"
		if sale.InventoryItem != nil {
			name = sale.InventoryItem.Name
			if sale.IsRental {
				name += " (rental)"
			}
		}
		receiptLine(pdf, name, fmt.Sprintf("%d", sale.Quantity), sale.UnitPrice, sale.Total)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(105, 8, "TOTAL", "T", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, b.TotalCost().StringFixed(2), "T", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Thank you for playing with us!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func receiptLine(pdf *fpdf.Fpdf, concept, qty string, unit, total decimal.Decimal) {
	pdf.CellFormat(70, 6, concept, "", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, qty, "", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, unit.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(20, 6, total.StringFixed(2), "", 1, "R", false, 0, "")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
