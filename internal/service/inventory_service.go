package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/repository"
	"github.com/iamumarjaved/padelbridge1/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService owns item CRUD and the stock-adjustment operation.
type InventoryService interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error)
	GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemDetailResponse, error)
	ListItems(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	AdjustStock(ctx context.Context, itemID uuid.UUID, req dto.AdjustStockRequest, actingUserID uuid.UUID) (*dto.ItemResponse, error)
	ListStockTransactions(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.StockTransactionResponse, error)
}

type inventoryService struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
	stockTxRepo  repository.StockTransactionRepository
	dispatcher   *worker.Dispatcher
}

func NewInventoryService(
	repo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	stockTxRepo repository.StockTransactionRepository,
	dispatcher *worker.Dispatcher,
) InventoryService {
	return &inventoryService{
		repo:         repo,
		categoryRepo: categoryRepo,
		stockTxRepo:  stockTxRepo,
		dispatcher:   dispatcher,
	}
}

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id", apierror.ErrInvalidInput)
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("%w: category", apierror.ErrNotFound)
	}

	if existing, err := s.repo.FindBySKU(ctx, req.SKU); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: an item with SKU %q already exists", apierror.ErrConflict, req.SKU)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &model.InventoryItem{
		Name:       req.Name,
		SKU:        req.SKU,
		CategoryID: categoryID,
		Quantity:   req.Quantity,
		CostPrice:  req.CostPrice,
		SellPrice:  req.SellPrice,
		MinStock:   req.MinStock,
		IsRental:   req.IsRental,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) GetItem(ctx context.Context, id uuid.UUID) (*dto.ItemDetailResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: item", apierror.ErrNotFound)
	}
	transactions, err := s.stockTxRepo.ListByItem(ctx, id, 10)
	if err != nil {
		return nil, err
	}
	detail := &dto.ItemDetailResponse{
		ItemResponse:      *itemToResponse(item),
		StockTransactions: make([]dto.StockTransactionResponse, 0, len(transactions)),
	}
	for i := range transactions {
		detail.StockTransactions = append(detail.StockTransactions, stockTxToResponse(&transactions[i]))
	}
	return detail, nil
}

func (s *inventoryService) ListItems(ctx context.Context, filter dto.ItemFilter) (*dto.ItemListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ItemListResponse{
		Data:  make([]dto.ItemResponse, 0, len(items)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range items {
		resp.Data = append(resp.Data, *itemToResponse(&items[i]))
	}
	return resp, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: item", apierror.ErrNotFound)
	}

	if req.SKU != nil && *req.SKU != item.SKU {
		if existing, err := s.repo.FindBySKUExcluding(ctx, *req.SKU, id); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: an item with SKU %q already exists", apierror.ErrConflict, *req.SKU)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		item.SKU = *req.SKU
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category_id", apierror.ErrInvalidInput)
		}
		if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
			return nil, fmt.Errorf("%w: category", apierror.ErrNotFound)
		}
		item.CategoryID = categoryID
		item.Category = nil
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		item.SellPrice = *req.SellPrice
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.IsRental != nil {
		item.IsRental = *req.IsRental
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: item", apierror.ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}

// ── AdjustStock ───────────────────────────────────────────────────────────────
// IN adds, OUT subtracts, ADJUSTMENT sets the absolute quantity. The quantity
// update and its audit row commit in one transaction; a rejected adjustment
// leaves both untouched.

func (s *inventoryService) AdjustStock(ctx context.Context, itemID uuid.UUID, req dto.AdjustStockRequest, actingUserID uuid.UUID) (*dto.ItemResponse, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: item", apierror.ErrNotFound)
	}

	if req.Quantity < 0 && req.Type != model.StockAdjustment {
		return nil, fmt.Errorf("%w: quantity must be 0 or more", apierror.ErrInvalidAdjustment)
	}

	newQuantity := item.Quantity
	switch req.Type {
	case model.StockIn:
		newQuantity += req.Quantity
	case model.StockOut:
		newQuantity -= req.Quantity
		if newQuantity < 0 {
			return nil, fmt.Errorf("%w: cannot reduce stock below 0", apierror.ErrInvalidAdjustment)
		}
	case model.StockAdjustment:
		if req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must be 0 or more", apierror.ErrInvalidAdjustment)
		}
		newQuantity = req.Quantity
	default:
		return nil, fmt.Errorf("%w: type", apierror.ErrInvalidInput)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SetQuantityTx(tx, itemID, newQuantity); err != nil {
			return err
		}
		audit := &model.StockTransaction{
			InventoryItemID: itemID,
			Type:            req.Type,
			Quantity:        req.Quantity,
			Notes:           req.Notes,
			CreatedByID:     actingUserID,
		}
		return s.stockTxRepo.CreateTx(tx, audit)
	})
	if txErr != nil {
		return nil, txErr
	}

	item.Quantity = newQuantity
	if s.dispatcher != nil && !item.IsRental && newQuantity <= item.MinStock {
		_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
			ItemID:   item.ID.String(),
			Name:     item.Name,
			SKU:      item.SKU,
			Quantity: newQuantity,
			MinStock: item.MinStock,
		})
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) ListStockTransactions(ctx context.Context, itemID uuid.UUID, limit int) ([]dto.StockTransactionResponse, error) {
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("%w: item", apierror.ErrNotFound)
	}
	transactions, err := s.stockTxRepo.ListByItem(ctx, itemID, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StockTransactionResponse, 0, len(transactions))
	for i := range transactions {
		resp = append(resp, stockTxToResponse(&transactions[i]))
	}
	return resp, nil
}

func itemToResponse(item *model.InventoryItem) *dto.ItemResponse {
	category := ""
	if item.Category != nil {
		category = item.Category.Name
	}
	return &dto.ItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		SKU:       item.SKU,
		Category:  category,
		Quantity:  item.Quantity,
		CostPrice: item.CostPrice,
		SellPrice: item.SellPrice,
		MinStock:  item.MinStock,
		IsRental:  item.IsRental,
		LowStock:  !item.IsRental && item.Quantity <= item.MinStock,
	}
}

func stockTxToResponse(t *model.StockTransaction) dto.StockTransactionResponse {
	createdBy := ""
	if t.CreatedBy != nil {
		createdBy = t.CreatedBy.Name
	}
	return dto.StockTransactionResponse{
		ID:        t.ID.String(),
		Type:      t.Type,
		Quantity:  t.Quantity,
		Notes:     t.Notes,
		CreatedBy: createdBy,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
