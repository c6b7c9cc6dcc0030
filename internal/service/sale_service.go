package service

import (
	"context"
	"fmt"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/repository"
	"github.com/iamumarjaved/padelbridge1/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	AddSale(ctx context.Context, req dto.AddSaleRequest) (*dto.SaleResponse, error)
	RemoveSale(ctx context.Context, id uuid.UUID) error
	ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error)
}

type saleService struct {
	repo        repository.SaleRepository
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	dispatcher  *worker.Dispatcher
}

func NewSaleService(
	repo repository.SaleRepository,
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		repo:        repo,
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		dispatcher:  dispatcher,
	}
}

// ── AddSale ───────────────────────────────────────────────────────────────────
// The one operation where atomicity genuinely matters: the Sale row and the
// stock decrement must land together or not at all.
//   1. Resolve booking and item; reject terminal bookings.
//   2. Pre-flight stock check for a friendly error message.
//   3. Snapshot unitPrice = item.sellPrice and the rental flag.
//   4. BEGIN TX: insert sale; conditional decrement (quantity >= qty) — a
//      zero-rows result means a concurrent sale won the stock, so roll back.
//   5. After commit, fire a low-stock alert if the item hit its threshold.

func (s *saleService) AddSale(ctx context.Context, req dto.AddSaleRequest) (*dto.SaleResponse, error) {
	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_id", apierror.ErrInvalidInput)
	}
	itemID, err := uuid.Parse(req.InventoryItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: inventory_item_id", apierror.ErrInvalidInput)
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}
	if booking.Status != model.BookingActive {
		return nil, fmt.Errorf("%w: booking is %s and no longer accepts sales", apierror.ErrConflict, booking.Status)
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: item", apierror.ErrNotFound)
	}
	if !item.IsRental && item.Quantity < req.Quantity {
		return nil, fmt.Errorf("%w: only %d available", apierror.ErrInsufficientStock, item.Quantity)
	}

	unitPrice := item.SellPrice
	total := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))

	sale := &model.Sale{
		BookingID:       bookingID,
		InventoryItemID: itemID,
		Quantity:        req.Quantity,
		UnitPrice:       unitPrice,
		Total:           total,
		IsRental:        item.IsRental,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, sale); err != nil {
			return err
		}
		if !item.IsRental {
			rows, err := s.itemRepo.DecrementStockTx(tx, itemID, req.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				// Lost the race against a concurrent sale — abort everything.
				return fmt.Errorf("%w: stock changed, only fewer than %d available", apierror.ErrInsufficientStock, req.Quantity)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if !item.IsRental {
		s.checkLowStock(ctx, itemID)
	}

	resp := saleToResponse(sale)
	resp.CustomerName = booking.CustomerName
	resp.CourtNumber = booking.CourtNumber
	resp.Item = item.Name
	resp.SKU = item.SKU
	return resp, nil
}

// ── RemoveSale ────────────────────────────────────────────────────────────────
// Reverses a sale: deletes the row and restores stock using the sale's OWN
// isRental snapshot, so flipping the item's flag after the fact cannot
// corrupt the restoration.

func (s *saleService) RemoveSale(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: sale", apierror.ErrNotFound)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return err
		}
		if !sale.IsRental {
			return s.itemRepo.RestockTx(tx, sale.InventoryItemID, sale.Quantity)
		}
		return nil
	})
}

func (s *saleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]dto.SaleResponse, error) {
	rng, err := parseSaleRange(filter)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.List(ctx, rng)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		r := saleToResponse(&sales[i])
		if sales[i].Booking != nil {
			r.CustomerName = sales[i].Booking.CustomerName
			r.CourtNumber = sales[i].Booking.CourtNumber
		}
		if sales[i].InventoryItem != nil {
			r.Item = sales[i].InventoryItem.Name
			r.SKU = sales[i].InventoryItem.SKU
		}
		resp = append(resp, *r)
	}
	return resp, nil
}

// checkLowStock enqueues a reorder alert when the item sits at or below its
// threshold. Best effort — a failed enqueue never fails the sale.
func (s *saleService) checkLowStock(ctx context.Context, itemID uuid.UUID) {
	if s.dispatcher == nil {
		return
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil || item.IsRental || item.Quantity > item.MinStock {
		return
	}
	_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
		ItemID:   item.ID.String(),
		Name:     item.Name,
		SKU:      item.SKU,
		Quantity: item.Quantity,
		MinStock: item.MinStock,
	})
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID.String(),
		BookingID: s.BookingID.String(),
		Quantity:  s.Quantity,
		UnitPrice: s.UnitPrice,
		Total:     s.Total,
		IsRental:  s.IsRental,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
