package repository

import (
	"context"

	"app/internal/domain/model"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (model.Purchase, error)
	CreateItems(ctx context.Context, items []model.PurchaseItem) error
	// セッションの購入履歴を新しい順で返す。
	ListBySessionID(ctx context.Context, sessionID string, limit int) ([]model.Purchase, error)
	FindByID(ctx context.Context, purchaseID string) (model.Purchase, error)
	ListItemsByPurchaseID(ctx context.Context, purchaseID string) ([]model.PurchaseItem, error)
}
