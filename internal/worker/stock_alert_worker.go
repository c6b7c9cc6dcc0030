package worker

import (
	"context"
	"fmt"

	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/infra"

	"github.com/rs/zerolog/log"
)

// StockAlertWorker emails the configured alert address when an item hits
// its reorder threshold.
type StockAlertWorker struct {
	mailer *infra.Mailer
	cfg    *config.Config
}

func NewStockAlertWorker(mailer *infra.Mailer, cfg *config.Config) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, cfg: cfg}
}

func (w *StockAlertWorker) Handle(ctx context.Context, p StockAlertPayload) error {
	log.Warn().Str("item_id", p.ItemID).Str("sku", p.SKU).
		Int("quantity", p.Quantity).Int("min_stock", p.MinStock).
		Msg("low stock")

	if w.cfg.AlertEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Low stock: %s (%s)", p.Name, p.SKU)
	body := fmt.Sprintf(
		`<h2>Reorder needed</h2>
<p><strong>%s</strong> (SKU %s) is down to <strong>%d</strong> units; the
reorder threshold is %d.</p>`,
		p.Name, p.SKU, p.Quantity, p.MinStock,
	)
	return w.mailer.Send([]string{w.cfg.AlertEmail}, subject, body, "", nil)
}
