package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// セッションのACTIVEカートを取得し、無ければ作成する。
	GetOrCreateActiveBySessionID(ctx context.Context, sessionID string) (model.Cart, error)
	FindActiveBySessionID(ctx context.Context, sessionID string) (model.Cart, error)
	// 購入確定でカートを閉じる。
	Deactivate(ctx context.Context, cartID string) error
}
