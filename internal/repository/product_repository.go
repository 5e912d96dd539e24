package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品マスタの永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 名前の部分一致で検索。名前昇順、上限limit件。
	Search(ctx context.Context, nameQuery string, limit int) ([]model.Product, error)
	FindByCode(ctx context.Context, janCode string) (model.Product, error)
	// シード専用。既存は上書き更新。
	Upsert(ctx context.Context, p model.Product) error
}
