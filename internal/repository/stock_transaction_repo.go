package repository

import (
	"context"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockTransactionRepository is the append-only audit log. There is no
// update or delete: committed rows are immutable.
type StockTransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.StockTransaction) error
	ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]model.StockTransaction, error)
}

type stockTransactionRepo struct{ db *gorm.DB }

func NewStockTransactionRepository(db *gorm.DB) StockTransactionRepository {
	return &stockTransactionRepo{db: db}
}

func (r *stockTransactionRepo) CreateTx(tx *gorm.DB, t *model.StockTransaction) error {
	return tx.Create(t).Error
}

func (r *stockTransactionRepo) ListByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]model.StockTransaction, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	var list []model.StockTransaction
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("inventory_item_id = ?", itemID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
