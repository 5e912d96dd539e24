package usecase

import (
	"context"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 履歴一覧の上限
const purchaseListLimit = 50

// PurchaseUsecase はカートから購入への確定を扱う。
// 確定（購入作成・明細コピー・カートを閉じる）は1トランザクション。
type PurchaseUsecase struct {
	tx           repo.TransactionManager
	sessionRepo  repo.SessionRepository
	purchaseRepo repo.PurchaseRepository
}

// DI
func NewPurchaseUsecase(
	tx repo.TransactionManager,
	sessionRepo repo.SessionRepository,
	purchaseRepo repo.PurchaseRepository,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		tx:           tx,
		sessionRepo:  sessionRepo,
		purchaseRepo: purchaseRepo,
	}
}

type PurchaseResponse struct {
	ID           string    `json:"id"`
	TotalExclTax int64     `json:"totalExclTax"`
	TotalInclTax int64     `json:"totalInclTax"`
	CreatedAt    time.Time `json:"createdAt"`
}

type PurchaseItemResponse struct {
	ID           string `json:"id"`
	JanCode      string `json:"janCode"`
	Quantity     int64  `json:"quantity"`
	PriceExclTax int64  `json:"priceExclTax"`
	PriceInclTax int64  `json:"priceInclTax"`
}

type PurchaseDetailResponse struct {
	ID           string                 `json:"id"`
	TotalExclTax int64                  `json:"totalExclTax"`
	TotalInclTax int64                  `json:"totalInclTax"`
	CreatedAt    time.Time              `json:"createdAt"`
	Items        []PurchaseItemResponse `json:"items"`
}

func toPurchaseResponse(p model.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:           p.ID,
		TotalExclTax: p.TotalExclTax,
		TotalInclTax: p.TotalInclTax,
		CreatedAt:    p.CreatedAt,
	}
}

// Checkout はACTIVEカートを購入として確定する。
// ビューの価格をそのままコピーするので、後の商品マスタ変更は確定済み購入に影響しない。
func (u *PurchaseUsecase) Checkout(ctx context.Context) (PurchaseResponse, error) {
	var out PurchaseResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		session, err := requireActiveSession(ctx, r.Sessions())
		if err != nil {
			return err
		}

		cart, err := r.Carts().GetOrCreateActiveBySessionID(ctx, session.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		view, err := buildCartResponse(ctx, r.CartItems(), r.Products(), cart)
		if err != nil {
			return err
		}
		if len(view.Items) == 0 {
			return NewValidationError("cart is empty")
		}

		purchase, err := r.Purchases().Create(ctx, model.Purchase{
			ClerkSessionID: session.ID,
			TotalExclTax:   view.TotalExclTax,
			TotalInclTax:   view.TotalInclTax,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// 明細はビューの値をそのままコピー
		items := make([]model.PurchaseItem, 0, len(view.Items))
		for _, it := range view.Items {
			items = append(items, model.PurchaseItem{
				PurchaseID:   purchase.ID,
				JanCode:      it.JanCode,
				Quantity:     it.Quantity,
				PriceExclTax: it.PriceExclTax,
				PriceInclTax: it.PriceInclTax,
			})
		}
		if err := r.Purchases().CreateItems(ctx, items); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// カートを締める
		if err := r.Carts().Deactivate(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toPurchaseResponse(purchase)
		return nil
	})
	if err != nil {
		return PurchaseResponse{}, err
	}

	return out, nil
}

// ListMyPurchases は現在のセッションの購入履歴を新しい順で返す。
func (u *PurchaseUsecase) ListMyPurchases(ctx context.Context) ([]PurchaseResponse, error) {
	session, err := requireActiveSession(ctx, u.sessionRepo)
	if err != nil {
		return []PurchaseResponse{}, err
	}

	purchases, err := u.purchaseRepo.ListBySessionID(ctx, session.ID, purchaseListLimit)
	if err != nil {
		return []PurchaseResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// GetPurchaseDetail は購入1件を明細付きで返す。
func (u *PurchaseUsecase) GetPurchaseDetail(ctx context.Context, purchaseID string) (PurchaseDetailResponse, error) {
	if purchaseID == "" {
		return PurchaseDetailResponse{}, NewValidationError("invalid id")
	}

	p, err := u.purchaseRepo.FindByID(ctx, purchaseID)
	if err == repo.ErrNotFound {
		return PurchaseDetailResponse{}, NewNotFoundError("purchase not found")
	}
	if err != nil {
		return PurchaseDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.purchaseRepo.ListItemsByPurchaseID(ctx, p.ID)
	if err != nil {
		return PurchaseDetailResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]PurchaseItemResponse, 0, len(items))
	for _, it := range items {
		respItems = append(respItems, PurchaseItemResponse{
			ID:           it.ID,
			JanCode:      it.JanCode,
			Quantity:     it.Quantity,
			PriceExclTax: it.PriceExclTax,
			PriceInclTax: it.PriceInclTax,
		})
	}

	return PurchaseDetailResponse{
		ID:           p.ID,
		TotalExclTax: p.TotalExclTax,
		TotalInclTax: p.TotalInclTax,
		CreatedAt:    p.CreatedAt,
		Items:        respItems,
	}, nil
}
