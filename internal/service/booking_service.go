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
)

// BookingService manages the booking lifecycle and its cost accrual.
type BookingService interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, createdByID uuid.UUID) (*dto.BookingResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error)
	List(ctx context.Context, filter dto.BookingFilter) ([]dto.BookingResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddExtraHours(ctx context.Context, id uuid.UUID, req dto.AddExtraHoursRequest) (*dto.BookingResponse, error)
}

type bookingService struct {
	repo       repository.BookingRepository
	courtRepo  repository.CourtRepository
	dispatcher *worker.Dispatcher
}

func NewBookingService(
	repo repository.BookingRepository,
	courtRepo repository.CourtRepository,
	dispatcher *worker.Dispatcher,
) BookingService {
	return &bookingService{repo: repo, courtRepo: courtRepo, dispatcher: dispatcher}
}

func (s *bookingService) Create(ctx context.Context, req dto.CreateBookingRequest, createdByID uuid.UUID) (*dto.BookingResponse, error) {
	court, err := s.courtRepo.FindByCourtNumber(ctx, req.CourtNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: court %d", apierror.ErrNotFound, req.CourtNumber)
	}
	if !court.IsActive {
		return nil, fmt.Errorf("%w: court %d is not active", apierror.ErrConflict, req.CourtNumber)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date", apierror.ErrInvalidInput)
	}

	basePrice := court.BasePrice
	if req.BasePrice != nil {
		basePrice = *req.BasePrice
	}

	booking := &model.Booking{
		CourtNumber:   req.CourtNumber,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		BasePrice:     basePrice,
		Status:        model.BookingActive,
		Notes:         req.Notes,
		CreatedByID:   createdByID,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return bookingToResponse(booking), nil
}

func (s *bookingService) Get(ctx context.Context, id uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}
	return bookingToResponse(booking), nil
}

func (s *bookingService) List(ctx context.Context, filter dto.BookingFilter) ([]dto.BookingResponse, error) {
	listFilter := repository.BookingListFilter{Status: filter.Status}
	if filter.DateFrom != "" {
		from, err := time.Parse("2006-01-02", filter.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: date_from", apierror.ErrInvalidInput)
		}
		listFilter.DateFrom = from
	}
	if filter.DateTo != "" {
		to, err := time.Parse("2006-01-02", filter.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: date_to", apierror.ErrInvalidInput)
		}
		listFilter.DateTo = to
	}

	bookings, err := s.repo.List(ctx, listFilter)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, *bookingToResponse(&bookings[i]))
	}
	return resp, nil
}

func (s *bookingService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}

	if req.CourtNumber != nil && *req.CourtNumber != booking.CourtNumber {
		if _, err := s.courtRepo.FindByCourtNumber(ctx, *req.CourtNumber); err != nil {
			return nil, fmt.Errorf("%w: court %d", apierror.ErrNotFound, *req.CourtNumber)
		}
		booking.CourtNumber = *req.CourtNumber
	}
	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		booking.CustomerPhone = req.CustomerPhone
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date", apierror.ErrInvalidInput)
		}
		booking.Date = date
	}
	if req.StartTime != nil {
		booking.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		booking.EndTime = *req.EndTime
	}
	if req.BasePrice != nil {
		booking.BasePrice = *req.BasePrice
	}
	if req.Notes != nil {
		booking.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return bookingToResponse(booking), nil
}

// UpdateStatus applies the state machine: ACTIVE → COMPLETED | CANCELLED.
// Terminal states are frozen. Completing a booking enqueues the receipt job.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}
	if req.Status == booking.Status {
		return bookingToResponse(booking), nil
	}
	if booking.Status != model.BookingActive {
		return nil, fmt.Errorf("%w: booking is already %s", apierror.ErrConflict, booking.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	booking.Status = req.Status

	if req.Status == model.BookingCompleted && s.dispatcher != nil {
		payload := worker.ReceiptPayload{BookingID: booking.ID.String()}
		if req.CustomerEmail != nil {
			payload.CustomerEmail = *req.CustomerEmail
		}
		_ = s.dispatcher.EnqueueReceipt(ctx, payload)
	}
	return bookingToResponse(booking), nil
}

// Delete removes the booking and, via the FK cascade, its sales. Stock is NOT
// restored — remove the sales individually first when restoration is wanted.
func (s *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}
	return s.repo.Delete(ctx, id)
}

// AddExtraHours accumulates hours and overwrites the single scalar rate, so
// previously accrued extra hours re-price at the latest rate when the total
// is computed. That retroactive repricing is intended billing behavior.
func (s *bookingService) AddExtraHours(ctx context.Context, id uuid.UUID, req dto.AddExtraHoursRequest) (*dto.BookingResponse, error) {
	if req.Hours.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: hours must be greater than 0", apierror.ErrInvalidInput)
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: booking", apierror.ErrNotFound)
	}
	if booking.Status != model.BookingActive {
		return nil, fmt.Errorf("%w: booking is %s and no longer accepts extra hours", apierror.ErrConflict, booking.Status)
	}

	booking.ExtraHours = booking.ExtraHours.Add(req.Hours)
	booking.ExtraHourPrice = req.PricePerHour

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return bookingToResponse(booking), nil
}

func bookingToResponse(b *model.Booking) *dto.BookingResponse {
	sales := make([]dto.BookingSaleResponse, 0, len(b.Sales))
	for i := range b.Sales {
		sale := &b.Sales[i]
		name, sku := "", ""
		if sale.InventoryItem != nil {
			name = sale.InventoryItem.Name
			sku = sale.InventoryItem.SKU
		}
		sales = append(sales, dto.BookingSaleResponse{
			ID:        sale.ID.String(),
			Item:      name,
			SKU:       sku,
			Quantity:  sale.Quantity,
			UnitPrice: sale.UnitPrice,
			Total:     sale.Total,
			IsRental:  sale.IsRental,
			CreatedAt: sale.CreatedAt.Format(time.RFC3339),
		})
	}

	createdBy := ""
	if b.CreatedBy != nil {
		createdBy = b.CreatedBy.Name
	}

	return &dto.BookingResponse{
		ID:             b.ID.String(),
		CourtNumber:    b.CourtNumber,
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		Date:           b.Date.Format("2006-01-02"),
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		BasePrice:      b.BasePrice,
		ExtraHours:     b.ExtraHours,
		ExtraHourPrice: b.ExtraHourPrice,
		Status:         b.Status,
		Notes:          b.Notes,
		CreatedBy:      createdBy,
		Sales:          sales,
		TotalCost:      b.TotalCost(),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}
