package service_test

import (
	"context"
	"testing"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourtDuplicateNumber(t *testing.T) {
	court := courtOne()
	svc := service.NewCourtService(newStubCourtRepo(court))

	_, err := svc.Create(context.Background(), dto.CreateCourtRequest{
		Name:        "Court Uno",
		CourtNumber: court.CourtNumber,
		BasePrice:   decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestDeleteCourtWithBookingsBlocked(t *testing.T) {
	court := courtOne()
	repo := newStubCourtRepo(court)
	repo.bookingCounts[court.CourtNumber] = 3
	svc := service.NewCourtService(repo)

	err := svc.Delete(context.Background(), court.ID)
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Contains(t, repo.courts, court.ID)
}

func TestDeleteCourtWithoutBookings(t *testing.T) {
	court := courtOne()
	repo := newStubCourtRepo(court)
	svc := service.NewCourtService(repo)

	require.NoError(t, svc.Delete(context.Background(), court.ID))
	assert.NotContains(t, repo.courts, court.ID)
}

func TestUpdateCourtNumberCollision(t *testing.T) {
	a := courtOne()
	b := courtOne()
	b.CourtNumber = 2
	svc := service.NewCourtService(newStubCourtRepo(a, b))

	taken := a.CourtNumber
	_, err := svc.Update(context.Background(), b.ID, dto.UpdateCourtRequest{CourtNumber: &taken})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}
