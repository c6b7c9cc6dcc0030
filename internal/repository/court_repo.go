package repository

import (
	"context"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourtRepository interface {
	Create(ctx context.Context, c *model.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Court, error)
	FindByCourtNumber(ctx context.Context, number int) (*model.Court, error)
	List(ctx context.Context, activeOnly bool) ([]model.Court, error)
	Update(ctx context.Context, c *model.Court) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountBookings counts bookings referencing the court's number; used to
	// block deletion of courts with booking history.
	CountBookings(ctx context.Context, courtNumber int) (int64, error)
}

type courtRepo struct{ db *gorm.DB }

func NewCourtRepository(db *gorm.DB) CourtRepository { return &courtRepo{db: db} }

func (r *courtRepo) Create(ctx context.Context, c *model.Court) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *courtRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Court, error) {
	var c model.Court
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *courtRepo) FindByCourtNumber(ctx context.Context, number int) (*model.Court, error) {
	var c model.Court
	err := r.db.WithContext(ctx).Where("court_number = ?", number).First(&c).Error
	return &c, err
}

func (r *courtRepo) List(ctx context.Context, activeOnly bool) ([]model.Court, error) {
	var courts []model.Court
	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = true")
	}
	err := q.Order("court_number ASC").Find(&courts).Error
	return courts, err
}

func (r *courtRepo) Update(ctx context.Context, c *model.Court) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *courtRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Court{}, id).Error
}

func (r *courtRepo) CountBookings(ctx context.Context, courtNumber int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("court_number = ?", courtNumber).Count(&count).Error
	return count, err
}
