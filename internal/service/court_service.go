package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourtService interface {
	Create(ctx context.Context, req dto.CreateCourtRequest) (*dto.CourtResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CourtResponse, error)
	List(ctx context.Context, activeOnly bool) ([]dto.CourtResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCourtRequest) (*dto.CourtResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courtService struct {
	repo repository.CourtRepository
}

func NewCourtService(repo repository.CourtRepository) CourtService {
	return &courtService{repo: repo}
}

func (s *courtService) Create(ctx context.Context, req dto.CreateCourtRequest) (*dto.CourtResponse, error) {
	if existing, err := s.repo.FindByCourtNumber(ctx, req.CourtNumber); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: court number %d is taken", apierror.ErrConflict, req.CourtNumber)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	court := &model.Court{
		Name:        req.Name,
		CourtNumber: req.CourtNumber,
		BasePrice:   req.BasePrice,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, court); err != nil {
		return nil, err
	}
	return s.courtToResponse(ctx, court), nil
}

func (s *courtService) Get(ctx context.Context, id uuid.UUID) (*dto.CourtResponse, error) {
	court, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: court", apierror.ErrNotFound)
	}
	return s.courtToResponse(ctx, court), nil
}

func (s *courtService) List(ctx context.Context, activeOnly bool) ([]dto.CourtResponse, error) {
	courts, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CourtResponse, 0, len(courts))
	for i := range courts {
		resp = append(resp, *s.courtToResponse(ctx, &courts[i]))
	}
	return resp, nil
}

func (s *courtService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCourtRequest) (*dto.CourtResponse, error) {
	court, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: court", apierror.ErrNotFound)
	}

	if req.CourtNumber != nil && *req.CourtNumber != court.CourtNumber {
		if existing, err := s.repo.FindByCourtNumber(ctx, *req.CourtNumber); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: court number %d is taken", apierror.ErrConflict, *req.CourtNumber)
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		court.CourtNumber = *req.CourtNumber
	}
	if req.Name != nil {
		court.Name = *req.Name
	}
	if req.BasePrice != nil {
		court.BasePrice = *req.BasePrice
	}
	if req.Description != nil {
		court.Description = req.Description
	}
	if req.IsActive != nil {
		court.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, court); err != nil {
		return nil, err
	}
	return s.courtToResponse(ctx, court), nil
}

// Delete refuses to remove a court that has booking history; deactivate it
// instead to keep old bookings resolvable.
func (s *courtService) Delete(ctx context.Context, id uuid.UUID) error {
	court, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: court", apierror.ErrNotFound)
	}
	count, err := s.repo.CountBookings(ctx, court.CourtNumber)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: court has %d bookings, deactivate it instead", apierror.ErrConflict, count)
	}
	return s.repo.Delete(ctx, id)
}

func (s *courtService) courtToResponse(ctx context.Context, c *model.Court) *dto.CourtResponse {
	count, _ := s.repo.CountBookings(ctx, c.CourtNumber)
	return &dto.CourtResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		CourtNumber:  c.CourtNumber,
		BasePrice:    c.BasePrice,
		Description:  c.Description,
		IsActive:     c.IsActive,
		BookingCount: count,
	}
}
