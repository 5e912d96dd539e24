package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// エラー種別ごとのコンストラクタ（入力不正 / 未存在 / 前提条件不足）。
// transportはStatusをそのまま返すだけで良い。

func NewValidationError(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

func NewNotFoundError(message string) error {
	return NewHTTPError(http.StatusNotFound, message)
}

func NewPreconditionError(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// 検索結果の上限
const productSearchLimit = 50

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// ProductResponse は税込価格を計算して返す。
type ProductResponse struct {
	JanCode      string `json:"janCode"`
	Name         string `json:"name"`
	PriceExclTax int64  `json:"priceExclTax"`
	TaxRate      int64  `json:"taxRate"`
	PriceInclTax int64  `json:"priceInclTax"`
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		JanCode:      p.JanCode,
		Name:         p.Name,
		PriceExclTax: p.PriceExclTax,
		TaxRate:      p.TaxRatePercent,
		PriceInclTax: p.PriceInclTax(),
	}
}

// ListProducts は商品一覧。qがあれば名前の部分一致で絞る。
func (u *ProductUsecase) ListProducts(ctx context.Context, nameQuery string) ([]ProductResponse, error) {
	products, err := u.productRepo.Search(ctx, nameQuery, productSearchLimit)
	if err != nil {
		return []ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct はJANコード指定の取得。
func (u *ProductUsecase) GetProduct(ctx context.Context, janCode string) (ProductResponse, error) {
	p, err := u.productRepo.FindByCode(ctx, janCode)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewNotFoundError("product not found")
	}
	if err != nil {
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductResponse(p), nil
}
