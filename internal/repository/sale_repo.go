package repository

import (
	"context"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleRange bounds sale queries by creation time. Zero-value bounds are
// ignored; To is expected to already be end-of-day inclusive.
type SaleRange struct {
	From time.Time
	To   time.Time
}

// TopItemRow is one aggregation bucket of the sales summary.
type TopItemRow struct {
	InventoryItemID uuid.UUID
	Name            string
	Quantity        int64
	Total           decimal.Decimal
}

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, rng SaleRange) ([]model.Sale, error)

	// Aggregations for the sales summary report.
	SumTotal(ctx context.Context, rng SaleRange) (decimal.Decimal, error)
	Count(ctx context.Context, rng SaleRange) (int64, error)
	TopItems(ctx context.Context, rng SaleRange, limit int) ([]TopItemRow, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("InventoryItem").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Sale{}, id).Error
}

func rangeScope(rng SaleRange) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if !rng.From.IsZero() {
			q = q.Where("sales.created_at >= ?", rng.From)
		}
		if !rng.To.IsZero() {
			q = q.Where("sales.created_at <= ?", rng.To)
		}
		return q
	}
}

func (r *saleRepo) List(ctx context.Context, rng SaleRange) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Scopes(rangeScope(rng)).
		Preload("Booking").Preload("InventoryItem").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) SumTotal(ctx context.Context, rng SaleRange) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Scopes(rangeScope(rng)).
		Select("COALESCE(SUM(total), 0)").Scan(&total).Error
	return total, err
}

func (r *saleRepo) Count(ctx context.Context, rng SaleRange) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Scopes(rangeScope(rng)).
		Count(&count).Error
	return count, err
}

func (r *saleRepo) TopItems(ctx context.Context, rng SaleRange, limit int) ([]TopItemRow, error) {
	var rows []TopItemRow
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Scopes(rangeScope(rng)).
		Select("sales.inventory_item_id, inventory_items.name AS name, SUM(sales.quantity) AS quantity, SUM(sales.total) AS total").
		Joins("JOIN inventory_items ON inventory_items.id = sales.inventory_item_id").
		Group("sales.inventory_item_id, inventory_items.name").
		Order("SUM(sales.total) DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
