package repository

import (
	"context"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingListFilter narrows booking listings. Zero-value time bounds are
// ignored.
type BookingListFilter struct {
	Status   string
	DateFrom time.Time
	DateTo   time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, b *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	List(ctx context.Context, filter BookingListFilter) ([]model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type bookingRepo struct{ db *gorm.DB }

func NewBookingRepository(db *gorm.DB) BookingRepository { return &bookingRepo{db: db} }

func (r *bookingRepo) DB() *gorm.DB { return r.db }

func (r *bookingRepo) Create(ctx context.Context, b *model.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Sales", func(db *gorm.DB) *gorm.DB { return db.Order("sales.created_at DESC") }).
		Preload("Sales.InventoryItem").
		First(&b, id).Error
	return &b, err
}

func (r *bookingRepo) List(ctx context.Context, filter BookingListFilter) ([]model.Booking, error) {
	var bookings []model.Booking
	q := r.db.WithContext(ctx).Model(&model.Booking{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if !filter.DateFrom.IsZero() {
		q = q.Where("date >= ?", filter.DateFrom)
	}
	if !filter.DateTo.IsZero() {
		q = q.Where("date <= ?", filter.DateTo)
	}

	err := q.Preload("CreatedBy").
		Preload("Sales").Preload("Sales.InventoryItem").
		Order("date DESC").Order("start_time DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) Update(ctx context.Context, b *model.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Booking{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *bookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Booking{}, id).Error
}
