package repository

import (
	"context"

	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type ItemRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error)
	// FindBySKUExcluding looks up a SKU owned by any item other than `exclude`;
	// used for uniqueness checks on update.
	FindBySKUExcluding(ctx context.Context, sku string, exclude uuid.UUID) (*model.InventoryItem, error)
	List(ctx context.Context, filter dto.ItemFilter) ([]model.InventoryItem, int64, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	// DecrementStockTx only applies when enough stock remains
	// (quantity >= delta); it reports the number of rows updated so the
	// caller can abort the transaction on a lost race.
	DecrementStockTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error)
	// RestockTx unconditionally adds delta back (sale reversal).
	RestockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	// SetQuantityTx writes an absolute quantity (stock adjustments).
	SetQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type itemRepo struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) ItemRepository { return &itemRepo{db: db} }

func (r *itemRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Preload("Category").First(&item, id).Error
	return &item, err
}

func (r *itemRepo) FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Preload("Category").Where("sku = ?", sku).First(&item).Error
	return &item, err
}

func (r *itemRepo) FindBySKUExcluding(ctx context.Context, sku string, exclude uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Where("sku = ? AND id <> ?", sku, exclude).First(&item).Error
	return &item, err
}

func (r *itemRepo) List(ctx context.Context, filter dto.ItemFilter) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	q := r.db.WithContext(ctx).Model(&model.InventoryItem{})

	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.LowStock {
		q = q.Where("quantity <= min_stock AND is_rental = false")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").Order("name ASC").
		Limit(filter.Limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *itemRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id).Error
}

func (r *itemRepo) DecrementStockTx(tx *gorm.DB, id uuid.UUID, delta int) (int64, error) {
	res := tx.Model(&model.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, delta).
		Update("quantity", gorm.Expr("quantity - ?", delta))
	return res.RowsAffected, res.Error
}

func (r *itemRepo) RestockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *itemRepo) SetQuantityTx(tx *gorm.DB, id uuid.UUID, quantity int) error {
	return tx.Model(&model.InventoryItem{}).Where("id = ?", id).
		Update("quantity", quantity).Error
}

func (r *itemRepo) DB() *gorm.DB { return r.db }
