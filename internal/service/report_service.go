package service

import (
	"context"
	"fmt"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/repository"
)

// topItemLimit caps the ranking in the sales summary.
const topItemLimit = 5

type ReportService interface {
	GetSalesSummary(ctx context.Context, filter dto.SaleFilter) (*dto.SalesSummaryResponse, error)
}

type reportService struct {
	saleRepo repository.SaleRepository
}

func NewReportService(saleRepo repository.SaleRepository) ReportService {
	return &reportService{saleRepo: saleRepo}
}

func (s *reportService) GetSalesSummary(ctx context.Context, filter dto.SaleFilter) (*dto.SalesSummaryResponse, error) {
	rng, err := parseSaleRange(filter)
	if err != nil {
		return nil, err
	}

	revenue, err := s.saleRepo.SumTotal(ctx, rng)
	if err != nil {
		return nil, err
	}
	count, err := s.saleRepo.Count(ctx, rng)
	if err != nil {
		return nil, err
	}
	rows, err := s.saleRepo.TopItems(ctx, rng, topItemLimit)
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesSummaryResponse{
		TotalRevenue:      revenue,
		TotalTransactions: count,
		TopItems:          make([]dto.TopItemResponse, 0, len(rows)),
	}
	for _, row := range rows {
		resp.TopItems = append(resp.TopItems, dto.TopItemResponse{
			InventoryItemID: row.InventoryItemID.String(),
			Name:            row.Name,
			Quantity:        row.Quantity,
			Total:           row.Total,
		})
	}
	return resp, nil
}

// parseSaleRange converts the wire-level date filter into repository bounds.
// date_to is inclusive: the upper bound is pushed to the end of that day.
func parseSaleRange(filter dto.SaleFilter) (repository.SaleRange, error) {
	var rng repository.SaleRange
	if filter.DateFrom != "" {
		from, err := time.Parse("2006-01-02", filter.DateFrom)
		if err != nil {
			return rng, fmt.Errorf("%w: from", apierror.ErrInvalidInput)
		}
		rng.From = from
	}
	if filter.DateTo != "" {
		to, err := time.Parse("2006-01-02", filter.DateTo)
		if err != nil {
			return rng, fmt.Errorf("%w: to", apierror.ErrInvalidInput)
		}
		rng.To = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.To.Before(rng.From) {
		return rng, fmt.Errorf("%w: to is before from", apierror.ErrInvalidInput)
	}
	return rng, nil
}
