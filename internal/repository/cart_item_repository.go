package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	FindByCartAndCode(ctx context.Context, cartID string, janCode string) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	// 同一JANは数量加算
	AddQuantity(ctx context.Context, cartItemID string, addQty int64) error
	// カートに属する明細だけを削除対象にする。
	DeleteByIDInCart(ctx context.Context, cartItemID string, cartID string) error
	DeleteByCartID(ctx context.Context, cartID string) error
}
