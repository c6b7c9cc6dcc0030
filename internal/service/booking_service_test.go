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

func courtOne() *model.Court {
	return &model.Court{
		ID:          uuid.New(),
		Name:        "Center Court",
		CourtNumber: 1,
		BasePrice:   decimal.NewFromInt(60),
		IsActive:    true,
	}
}

func TestCreateBookingDefaultsToCourtBasePrice(t *testing.T) {
	court := courtOne()
	svc := service.NewBookingService(newStubBookingRepo(), newStubCourtRepo(court), nil)

	resp, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		CourtNumber:  1,
		CustomerName: "Ana Torres",
		Date:         "2026-09-01",
		StartTime:    "18:00",
		EndTime:      "19:30",
	}, uuid.New())
	require.NoError(t, err)
	assert.True(t, resp.BasePrice.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, model.BookingActive, resp.Status)
}

func TestCreateBookingInactiveCourtRejected(t *testing.T) {
	court := courtOne()
	court.IsActive = false
	svc := service.NewBookingService(newStubBookingRepo(), newStubCourtRepo(court), nil)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		CourtNumber:  1,
		CustomerName: "Ana Torres",
		Date:         "2026-09-01",
		StartTime:    "18:00",
		EndTime:      "19:30",
	}, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	svc := service.NewBookingService(newStubBookingRepo(), newStubCourtRepo(), nil)
	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		CourtNumber:  9,
		CustomerName: "Ana Torres",
		Date:         "2026-09-01",
		StartTime:    "18:00",
		EndTime:      "19:30",
	}, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

// Total = base 60 + 2 extra hours at 10 + sales 27 = 107.
func TestBookingTotalCost(t *testing.T) {
	booking := activeBooking()
	booking.ExtraHours = decimal.NewFromInt(2)
	booking.ExtraHourPrice = decimal.NewFromInt(10)
	booking.Sales = []model.Sale{
		{Total: decimal.NewFromInt(20)},
		{Total: decimal.NewFromInt(7)},
	}
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	resp, err := svc.Get(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(107)),
		"got %s", resp.TotalCost)
}

func TestAddExtraHoursAccumulatesAndRepricesRetroactively(t *testing.T) {
	booking := activeBooking()
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	_, err := svc.AddExtraHours(context.Background(), booking.ID, dto.AddExtraHoursRequest{
		Hours:        decimal.NewFromInt(1),
		PricePerHour: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	resp, err := svc.AddExtraHours(context.Background(), booking.ID, dto.AddExtraHoursRequest{
		Hours:        decimal.NewFromInt(2),
		PricePerHour: decimal.NewFromInt(15),
	})
	require.NoError(t, err)

	// All 3 hours are billed at the latest rate.
	assert.True(t, resp.ExtraHours.Equal(decimal.NewFromInt(3)))
	assert.True(t, resp.ExtraHourPrice.Equal(decimal.NewFromInt(15)))
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(105)), "got %s", resp.TotalCost)
}

func TestAddExtraHoursRejectsNonPositive(t *testing.T) {
	booking := activeBooking()
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	_, err := svc.AddExtraHours(context.Background(), booking.ID, dto.AddExtraHoursRequest{
		Hours:        decimal.Zero,
		PricePerHour: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidInput)
}

func TestAddExtraHoursTerminalBookingRejected(t *testing.T) {
	booking := activeBooking()
	booking.Status = model.BookingCompleted
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	_, err := svc.AddExtraHours(context.Background(), booking.ID, dto.AddExtraHoursRequest{
		Hours:        decimal.NewFromInt(1),
		PricePerHour: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestUpdateStatusTerminalIsFrozen(t *testing.T) {
	booking := activeBooking()
	booking.Status = model.BookingCancelled
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	_, err := svc.UpdateStatus(context.Background(), booking.ID,
		dto.UpdateBookingStatusRequest{Status: model.BookingCompleted})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestUpdateStatusSameStatusIsNoop(t *testing.T) {
	booking := activeBooking()
	booking.Status = model.BookingCompleted
	svc := service.NewBookingService(newStubBookingRepo(booking), newStubCourtRepo(), nil)

	resp, err := svc.UpdateStatus(context.Background(), booking.ID,
		dto.UpdateBookingStatusRequest{Status: model.BookingCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.BookingCompleted, resp.Status)
}

func TestUpdateStatusCompletes(t *testing.T) {
	booking := activeBooking()
	repo := newStubBookingRepo(booking)
	svc := service.NewBookingService(repo, newStubCourtRepo(), nil)

	resp, err := svc.UpdateStatus(context.Background(), booking.ID,
		dto.UpdateBookingStatusRequest{Status: model.BookingCompleted})
	require.NoError(t, err)
	assert.Equal(t, model.BookingCompleted, resp.Status)
	assert.Equal(t, model.BookingCompleted, repo.bookings[booking.ID].Status)
}
