package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/infra"
	"github.com/iamumarjaved/padelbridge1/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReceiptWorker renders the receipt PDF for a completed booking, stores it
// under the receipt directory, and emails it when the payload carries a
// customer address.
type ReceiptWorker struct {
	bookingRepo repository.BookingRepository
	mailer      *infra.Mailer
	cfg         *config.Config
}

func NewReceiptWorker(bookingRepo repository.BookingRepository, mailer *infra.Mailer, cfg *config.Config) *ReceiptWorker {
	return &ReceiptWorker{bookingRepo: bookingRepo, mailer: mailer, cfg: cfg}
}

func (w *ReceiptWorker) Handle(ctx context.Context, p ReceiptPayload) error {
	bookingID, err := uuid.Parse(p.BookingID)
	if err != nil {
		return fmt.Errorf("bad booking id %q: %w", p.BookingID, err)
	}
	booking, err := w.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("load booking %s: %w", p.BookingID, err)
	}

	pdf, err := infra.GenerateBookingReceiptPDF(booking, w.cfg.VenueName)
	if err != nil {
		return fmt.Errorf("render receipt %s: %w", p.BookingID, err)
	}

	if err := os.MkdirAll(w.cfg.ReceiptStoragePath, 0o755); err != nil {
		return err
	}
	path := ReceiptPath(w.cfg.ReceiptStoragePath, p.BookingID)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("store receipt %s: %w", p.BookingID, err)
	}
	log.Info().Str("booking_id", p.BookingID).Str("path", path).Msg("receipt stored")

	if p.CustomerEmail != "" {
		subject := fmt.Sprintf("Your receipt from %s", w.cfg.VenueName)
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>thanks for playing with us. Your receipt is attached.</p>",
			booking.CustomerName,
		)
		if err := w.mailer.Send([]string{p.CustomerEmail}, subject, body, "receipt.pdf", pdf); err != nil {
			return fmt.Errorf("email receipt %s: %w", p.BookingID, err)
		}
	}
	return nil
}

// ReceiptPath is where a booking's receipt PDF lives once rendered.
func ReceiptPath(dir, bookingID string) string {
	return filepath.Join(dir, bookingID+".pdf")
}
