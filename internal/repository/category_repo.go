package repository

import (
	"context"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository defines CRUD operations for inventory categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.InventoryCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryCategory, error)
	List(ctx context.Context) ([]model.InventoryCategory, error)
	Update(ctx context.Context, c *model.InventoryCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountItems(ctx context.Context, id uuid.UUID) (int64, error)
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.InventoryCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryCategory, error) {
	var c model.InventoryCategory
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context) ([]model.InventoryCategory, error) {
	var list []model.InventoryCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.InventoryCategory) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InventoryCategory{}, id).Error
}

func (r *categoryRepo) CountItems(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Where("category_id = ?", id).Count(&count).Error
	return count, err
}
