package service_test

import (
	"context"
	"testing"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beverageCategory() *model.InventoryCategory {
	return &model.InventoryCategory{
		ID:   uuid.New(),
		Name: "Beverages",
		Type: model.CategoryBeverageSnack,
	}
}

func TestCreateItemRejectsDuplicateSKU(t *testing.T) {
	category := beverageCategory()
	existing := waterItem(10)
	svc := service.NewInventoryService(
		newStubItemRepo(existing), newStubCategoryRepo(category), &stubStockTxRepo{}, nil)

	_, err := svc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:       "Another Water",
		SKU:        existing.SKU,
		CategoryID: category.ID.String(),
		SellPrice:  decimal.NewFromInt(3),
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestCreateItemUnknownCategory(t *testing.T) {
	svc := service.NewInventoryService(
		newStubItemRepo(), newStubCategoryRepo(), &stubStockTxRepo{}, nil)

	_, err := svc.CreateItem(context.Background(), dto.CreateItemRequest{
		Name:       "Grip Tape",
		SKU:        "PRO-001",
		CategoryID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestUpdateItemSKUCollision(t *testing.T) {
	category := beverageCategory()
	a := waterItem(10)
	b := waterItem(5)
	b.ID = uuid.New()
	b.SKU = "BEV-002"
	svc := service.NewInventoryService(
		newStubItemRepo(a, b), newStubCategoryRepo(category), &stubStockTxRepo{}, nil)

	sku := a.SKU
	_, err := svc.UpdateItem(context.Background(), b.ID, dto.UpdateItemRequest{SKU: &sku})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestAdjustStockIn(t *testing.T) {
	item := waterItem(10)
	stockTxRepo := &stubStockTxRepo{}
	svc := service.NewInventoryService(newStubItemRepo(item), newStubCategoryRepo(), stockTxRepo, nil)

	actingID := uuid.New()
	resp, err := svc.AdjustStock(context.Background(), item.ID,
		dto.AdjustStockRequest{Type: model.StockIn, Quantity: 24}, actingID)
	require.NoError(t, err)

	assert.Equal(t, 34, resp.Quantity)
	require.Len(t, stockTxRepo.created, 1)
	audit := stockTxRepo.created[0]
	assert.Equal(t, model.StockIn, audit.Type)
	assert.Equal(t, 24, audit.Quantity)
	assert.Equal(t, actingID, audit.CreatedByID)
}

func TestAdjustStockOutBelowZeroRejected(t *testing.T) {
	item := waterItem(3)
	stockTxRepo := &stubStockTxRepo{}
	svc := service.NewInventoryService(newStubItemRepo(item), newStubCategoryRepo(), stockTxRepo, nil)

	_, err := svc.AdjustStock(context.Background(), item.ID,
		dto.AdjustStockRequest{Type: model.StockOut, Quantity: 5}, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrInvalidAdjustment)

	// Neither the quantity nor the audit trail moved.
	assert.Equal(t, 3, item.Quantity)
	assert.Empty(t, stockTxRepo.created)
}

func TestAdjustStockAbsolute(t *testing.T) {
	item := waterItem(10)
	svc := service.NewInventoryService(newStubItemRepo(item), newStubCategoryRepo(), &stubStockTxRepo{}, nil)

	resp, err := svc.AdjustStock(context.Background(), item.ID,
		dto.AdjustStockRequest{Type: model.StockAdjustment, Quantity: 42}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 42, resp.Quantity)
}

func TestAdjustStockNegativeAbsoluteRejected(t *testing.T) {
	item := waterItem(10)
	svc := service.NewInventoryService(newStubItemRepo(item), newStubCategoryRepo(), &stubStockTxRepo{}, nil)

	_, err := svc.AdjustStock(context.Background(), item.ID,
		dto.AdjustStockRequest{Type: model.StockAdjustment, Quantity: -1}, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrInvalidAdjustment)
}

func TestAdjustStockUnknownItem(t *testing.T) {
	svc := service.NewInventoryService(newStubItemRepo(), newStubCategoryRepo(), &stubStockTxRepo{}, nil)
	_, err := svc.AdjustStock(context.Background(), uuid.New(),
		dto.AdjustStockRequest{Type: model.StockIn, Quantity: 1}, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestLowStockFlag(t *testing.T) {
	item := waterItem(5) // MinStock is 5: at the threshold counts as low
	svc := service.NewInventoryService(newStubItemRepo(item), newStubCategoryRepo(), &stubStockTxRepo{}, nil)

	resp, err := svc.GetItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.True(t, resp.LowStock)
}
