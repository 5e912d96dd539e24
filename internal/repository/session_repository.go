package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type SessionRepository interface {
	// ACTIVEなセッションを開始時刻の新しい順で1件返す。
	FindActive(ctx context.Context) (model.ClerkSession, error)
	// ACTIVEなセッションを全て終了させる。0件でもエラーにしない。
	DeactivateAll(ctx context.Context, endedAt time.Time) error
	Create(ctx context.Context, s model.ClerkSession) (model.ClerkSession, error)
	Deactivate(ctx context.Context, sessionID string, endedAt time.Time) error
}
