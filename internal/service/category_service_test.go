package service_test

import (
	"context"
	"testing"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryWithItemsBlocked(t *testing.T) {
	category := beverageCategory()
	repo := newStubCategoryRepo(category)
	repo.itemCounts[category.ID] = 4
	svc := service.NewCategoryService(repo)

	err := svc.Delete(context.Background(), category.ID)
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Contains(t, repo.categories, category.ID)
}

func TestDeleteEmptyCategory(t *testing.T) {
	category := beverageCategory()
	repo := newStubCategoryRepo(category)
	svc := service.NewCategoryService(repo)

	require.NoError(t, svc.Delete(context.Background(), category.ID))
	assert.NotContains(t, repo.categories, category.ID)
}

func TestDeleteUnknownCategory(t *testing.T) {
	svc := service.NewCategoryService(newStubCategoryRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCreateCategoryReportsItemCount(t *testing.T) {
	svc := service.NewCategoryService(newStubCategoryRepo())
	resp, err := svc.Create(context.Background(), dto.CreateCategoryRequest{
		Name: "Pro Shop",
		Type: model.CategoryProShop,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.ItemCount)
	assert.Equal(t, model.CategoryProShop, resp.Type)
}
