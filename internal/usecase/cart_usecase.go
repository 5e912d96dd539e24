package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/cart の業務ロジック。
// 全ての操作は「ACTIVEなセッションがある」ことが前提で、
// そのセッションのACTIVEカート1つだけを対象にする。
type CartUsecase struct {
	tx repo.TransactionManager
}

// DI
func NewCartUsecase(tx repo.TransactionManager) *CartUsecase {
	return &CartUsecase{tx: tx}
}

type CartItemResponse struct {
	ID              string `json:"id"`
	JanCode         string `json:"janCode"`
	Name            string `json:"name"`
	PriceExclTax    int64  `json:"priceExclTax"`
	TaxRate         int64  `json:"taxRate"`
	PriceInclTax    int64  `json:"priceInclTax"`
	Quantity        int64  `json:"quantity"`
	SubTotalExclTax int64  `json:"subTotalExclTax"`
	SubTotalInclTax int64  `json:"subTotalInclTax"`
}

type CartResponse struct {
	ID           string             `json:"id"`
	Items        []CartItemResponse `json:"items"`
	TotalExclTax int64              `json:"totalExclTax"`
	TotalInclTax int64              `json:"totalInclTax"`
}

type AddCartItemInput struct {
	JanCode  string
	Quantity int64
}

// requireActiveSession はACTIVEセッションを返す。無ければ400。
func requireActiveSession(ctx context.Context, sessions repo.SessionRepository) (model.ClerkSession, error) {
	s, err := sessions.FindActive(ctx)
	if err == repo.ErrNotFound {
		return model.ClerkSession{}, NewPreconditionError("please start session first")
	}
	if err != nil {
		return model.ClerkSession{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// buildCartResponse は明細を商品マスタと突き合わせてビューを組み立てる。
// マスタに無いJANの明細はエラーにせずスキップする（不整合の許容）。
// 合計はスキップされなかった行だけで計算する。
func buildCartResponse(
	ctx context.Context,
	cartItems repo.CartItemRepository,
	products repo.ProductRepository,
	cart model.Cart,
) (CartResponse, error) {
	items, err := cartItems.ListByCartID(ctx, cart.ID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var totalExcl int64 = 0
	var totalIncl int64 = 0

	for _, it := range items {
		p, err := products.FindByCode(ctx, it.JanCode)
		if err == repo.ErrNotFound {
			// 不整合はスキップ
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		priceIncl := p.PriceInclTax()
		subExcl := p.PriceExclTax * it.Quantity
		subIncl := priceIncl * it.Quantity

		respItems = append(respItems, CartItemResponse{
			ID:              it.ID,
			JanCode:         it.JanCode,
			Name:            p.Name,
			PriceExclTax:    p.PriceExclTax,
			TaxRate:         p.TaxRatePercent,
			PriceInclTax:    priceIncl,
			Quantity:        it.Quantity,
			SubTotalExclTax: subExcl,
			SubTotalInclTax: subIncl,
		})

		totalExcl += subExcl
		totalIncl += subIncl
	}

	return CartResponse{
		ID:           cart.ID,
		Items:        respItems,
		TotalExclTax: totalExcl,
		TotalInclTax: totalIncl,
	}, nil
}

// GetCart はカート取得（無ければACTIVEを作って空を返す）。
func (u *CartUsecase) GetCart(ctx context.Context) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		session, err := requireActiveSession(ctx, r.Sessions())
		if err != nil {
			return err
		}

		cart, err := r.Carts().GetOrCreateActiveBySessionID(ctx, session.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartResponse(ctx, r.CartItems(), r.Products(), cart)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}

// AddItem はカートに追加（同一JANは数量加算）。
func (u *CartUsecase) AddItem(ctx context.Context, in AddCartItemInput) (CartResponse, error) {
	if in.JanCode == "" {
		return CartResponse{}, NewValidationError("invalid janCode")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewValidationError("invalid quantity")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		session, err := requireActiveSession(ctx, r.Sessions())
		if err != nil {
			return err
		}

		cart, err := r.Carts().GetOrCreateActiveBySessionID(ctx, session.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		existing, err := r.CartItems().FindByCartAndCode(ctx, cart.ID, in.JanCode)
		if err == nil {
			// 既存明細は数量加算。このパスでは商品の存在は再チェックしない。
			if err := r.CartItems().AddQuantity(ctx, existing.ID, in.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else if err == repo.ErrNotFound {
			// 新規明細は商品存在チェック
			if _, err := r.Products().FindByCode(ctx, in.JanCode); err != nil {
				if err == repo.ErrNotFound {
					return NewNotFoundError("product not found")
				}
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			if _, err := r.CartItems().Create(ctx, model.CartItem{
				CartID:   cart.ID,
				JanCode:  in.JanCode,
				Quantity: in.Quantity,
			}); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		} else {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartResponse(ctx, r.CartItems(), r.Products(), cart)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}

// RemoveItem はACTIVEカートの明細を1件削除。
func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID string) (CartResponse, error) {
	if cartItemID == "" {
		return CartResponse{}, NewValidationError("invalid id")
	}

	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		session, err := requireActiveSession(ctx, r.Sessions())
		if err != nil {
			return err
		}

		cart, err := r.Carts().GetOrCreateActiveBySessionID(ctx, session.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteByIDInCart(ctx, cartItemID, cart.ID); err != nil {
			if err == repo.ErrNotFound {
				return NewNotFoundError("cart item not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartResponse(ctx, r.CartItems(), r.Products(), cart)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}

// Clear はACTIVEカートの明細を全削除して空のビューを返す。
func (u *CartUsecase) Clear(ctx context.Context) (CartResponse, error) {
	var out CartResponse

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		session, err := requireActiveSession(ctx, r.Sessions())
		if err != nil {
			return err
		}

		cart, err := r.Carts().GetOrCreateActiveBySessionID(ctx, session.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.CartItems().DeleteByCartID(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out, err = buildCartResponse(ctx, r.CartItems(), r.Products(), cart)
		return err
	})
	if err != nil {
		return CartResponse{}, err
	}

	return out, nil
}
