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

type SessionGormRepository struct {
	db *gorm.DB
}

// DI
func NewSessionGormRepository(db *gorm.DB) *SessionGormRepository {
	return &SessionGormRepository{db: db}
}

// ACTIVEなセッションを開始時刻の新しい順で1件取得
func (r *SessionGormRepository) FindActive(ctx context.Context) (model.ClerkSession, error) {
	var s model.ClerkSession

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("started_at desc").
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ClerkSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ClerkSession{}, err
	}
	return s, nil
}

// ACTIVEなセッションを全て終了させる
func (r *SessionGormRepository) DeactivateAll(ctx context.Context, endedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.ClerkSession{}).
		Where("is_active = ?", true).
		Updates(map[string]interface{}{
			"is_active": false,
			"ended_at":  endedAt,
		}).Error
}

// セッションを作成。IDは未設定ならUUIDを振る。
func (r *SessionGormRepository) Create(ctx context.Context, s model.ClerkSession) (model.ClerkSession, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.ClerkSession{}, err
	}
	return s, nil
}

// 指定セッションを終了させる
func (r *SessionGormRepository) Deactivate(ctx context.Context, sessionID string, endedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.ClerkSession{}).
		Where("id = ? AND is_active = ?", sessionID, true).
		Updates(map[string]interface{}{
			"is_active": false,
			"ended_at":  endedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
