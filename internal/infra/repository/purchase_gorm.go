package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

// DI
func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

// 購入を作成。IDは未設定ならUUIDを振る。
func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// 購入明細を一括作成
func (r *PurchaseGormRepository) CreateItems(ctx context.Context, items []model.PurchaseItem) error {
	if len(items) == 0 {
		return nil
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	return r.db.WithContext(ctx).Create(&items).Error
}

// セッションの購入履歴を新しい順で取得
func (r *PurchaseGormRepository) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]model.Purchase, error) {
	var purchases []model.Purchase

	if err := r.db.WithContext(ctx).
		Where("clerk_session_id = ?", sessionID).
		Order("created_at desc").
		Limit(limit).
		Find(&purchases).Error; err != nil {
		return []model.Purchase{}, err
	}

	return purchases, nil
}

// 購入を取得
func (r *PurchaseGormRepository) FindByID(ctx context.Context, purchaseID string) (model.Purchase, error) {
	var p model.Purchase

	err := r.db.WithContext(ctx).
		Where("id = ?", purchaseID).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Purchase{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// 購入の明細を一覧取得
func (r *PurchaseGormRepository) ListItemsByPurchaseID(ctx context.Context, purchaseID string) ([]model.PurchaseItem, error) {
	var items []model.PurchaseItem

	if err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.PurchaseItem{}, err
	}

	return items, nil
}
