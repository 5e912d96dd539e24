package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 許可する担当者コード（固定）
var allowedClerkCodes = map[string]struct{}{
	"1": {},
	"2": {},
	"3": {},
	"4": {},
	"5": {},
}

// SessionUsecase は担当者セッションのライフサイクルを扱う。
// ACTIVEなセッションは常に最大1つ。
type SessionUsecase struct {
	tx               repo.TransactionManager
	sessionRepo      repo.SessionRepository
	defaultStoreCode string
}

// DI
func NewSessionUsecase(
	tx repo.TransactionManager,
	sessionRepo repo.SessionRepository,
	defaultStoreCode string,
) *SessionUsecase {
	return &SessionUsecase{
		tx:               tx,
		sessionRepo:      sessionRepo,
		defaultStoreCode: defaultStoreCode,
	}
}

type StartSessionInput struct {
	ClerkCode string
	StoreCode string
}

type SessionResponse struct {
	ID        string     `json:"id"`
	ClerkCode string     `json:"clerkCode"`
	StoreCode string     `json:"storeCode"`
	IsActive  bool       `json:"isActive"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
}

func toSessionResponse(s model.ClerkSession) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		ClerkCode: s.ClerkCode,
		StoreCode: s.StoreCode,
		IsActive:  s.IsActive,
		StartedAt: s.StartedAt,
		EndedAt:   s.EndedAt,
	}
}

// Start はセッション開始。
// 既存のACTIVEは同一トランザクション内で全て終了させてから新規に作る。
func (u *SessionUsecase) Start(ctx context.Context, in StartSessionInput) (SessionResponse, error) {
	if _, ok := allowedClerkCodes[in.ClerkCode]; !ok {
		return SessionResponse{}, NewValidationError("clerkCode must be 1-5")
	}

	storeCode := in.StoreCode
	if storeCode == "" {
		storeCode = u.defaultStoreCode
	}

	var out SessionResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		if err := r.Sessions().DeactivateAll(ctx, now); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Sessions().Create(ctx, model.ClerkSession{
			ClerkCode: in.ClerkCode,
			StoreCode: storeCode,
			IsActive:  true,
			StartedAt: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toSessionResponse(created)
		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return out, nil
}

// GetActive は現在のACTIVEセッションを返す。
func (u *SessionUsecase) GetActive(ctx context.Context) (SessionResponse, error) {
	s, err := u.sessionRepo.FindActive(ctx)
	if err == repo.ErrNotFound {
		return SessionResponse{}, NewNotFoundError("active session not found")
	}
	if err != nil {
		return SessionResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toSessionResponse(s), nil
}

// End は現在のACTIVEセッションを終了させる。
func (u *SessionUsecase) End(ctx context.Context) (SessionResponse, error) {
	var out SessionResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Sessions().FindActive(ctx)
		if err == repo.ErrNotFound {
			return NewNotFoundError("active session not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		if err := r.Sessions().Deactivate(ctx, s.ID, now); err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("active session not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		s.IsActive = false
		s.EndedAt = &now
		out = toSessionResponse(s)
		return nil
	})
	if err != nil {
		return SessionResponse{}, err
	}

	return out, nil
}
