package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_ListProducts_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("Search", mock.Anything, "ファイル", 50).Return([]model.Product{
		{JanCode: "4901001000074", Name: "クリアファイル タイプA", PriceExclTax: 80, TaxRatePercent: 10},
		{JanCode: "4901001000081", Name: "クリアファイル タイプB", PriceExclTax: 100, TaxRatePercent: 10},
	}, nil)

	out, err := uc.ListProducts(context.Background(), "ファイル")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(88), out[0].PriceInclTax)
	assert.Equal(t, int64(110), out[1].PriceInclTax)

	products.AssertExpectations(t)
}

func TestProductUsecase_ListProducts_EmptyQuery(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("Search", mock.Anything, "", 50).Return([]model.Product{}, nil)

	out, err := uc.ListProducts(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, out, 0)
}

func TestProductUsecase_GetProduct_Success(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByCode", mock.Anything, "4901001000012").
		Return(model.Product{JanCode: "4901001000012", Name: "シャープペンシル 0.5mm", PriceExclTax: 150, TaxRatePercent: 10}, nil)

	out, err := uc.GetProduct(context.Background(), "4901001000012")
	assert.NoError(t, err)
	assert.Equal(t, int64(150), out.PriceExclTax)
	assert.Equal(t, int64(165), out.PriceInclTax)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByCode", mock.Anything, "0000000000000").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), "0000000000000")
	assertErrContains(t, err, "product not found")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}
