package repository

import (
	"context"
	"errors"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 名前の部分一致（大文字小文字は区別）で検索する。クエリ無しなら先頭limit件。
func (r *ProductGormRepository) Search(ctx context.Context, nameQuery string, limit int) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if strings.TrimSpace(nameQuery) != "" {
		like := "%" + nameQuery + "%"
		tx = tx.Where("name LIKE ?", like)
	}

	if err := tx.Order("name asc").Limit(limit).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// JANコードで商品を取得
func (r *ProductGormRepository) FindByCode(ctx context.Context, janCode string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("jan_code = ?", janCode).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// JANコードで挿入または上書き。2回流しても行は増えない。
func (r *ProductGormRepository) Upsert(ctx context.Context, p model.Product) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "jan_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "price_excl_tax", "tax_rate_percent"}),
		}).
		Create(&p).Error
}
