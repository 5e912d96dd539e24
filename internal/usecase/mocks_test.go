package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type SessionRepoMock struct{ mock.Mock }

func (m *SessionRepoMock) FindActive(ctx context.Context) (model.ClerkSession, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.ClerkSession)
	return s, args.Error(1)
}

func (m *SessionRepoMock) DeactivateAll(ctx context.Context, endedAt time.Time) error {
	args := m.Called(ctx, endedAt)
	return args.Error(0)
}

func (m *SessionRepoMock) Create(ctx context.Context, s model.ClerkSession) (model.ClerkSession, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.ClerkSession)
	return created, args.Error(1)
}

func (m *SessionRepoMock) Deactivate(ctx context.Context, sessionID string, endedAt time.Time) error {
	args := m.Called(ctx, sessionID, endedAt)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Search(ctx context.Context, nameQuery string, limit int) ([]model.Product, error) {
	args := m.Called(ctx, nameQuery, limit)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByCode(ctx context.Context, janCode string) (model.Product, error) {
	args := m.Called(ctx, janCode)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Upsert(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) GetOrCreateActiveBySessionID(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) FindActiveBySessionID(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartRepoMock) Deactivate(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByCartAndCode(ctx context.Context, cartID string, janCode string) (model.CartItem, error) {
	args := m.Called(ctx, cartID, janCode)
	item, _ := args.Get(0).(model.CartItem)
	return item, args.Error(1)
}

func (m *CartItemRepoMock) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.CartItem)
	return created, args.Error(1)
}

func (m *CartItemRepoMock) AddQuantity(ctx context.Context, cartItemID string, addQty int64) error {
	args := m.Called(ctx, cartItemID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByIDInCart(ctx context.Context, cartItemID string, cartID string) error {
	args := m.Called(ctx, cartItemID, cartID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByCartID(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type PurchaseRepoMock struct{ mock.Mock }

func (m *PurchaseRepoMock) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Purchase)
	return created, args.Error(1)
}

func (m *PurchaseRepoMock) CreateItems(ctx context.Context, items []model.PurchaseItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *PurchaseRepoMock) ListBySessionID(ctx context.Context, sessionID string, limit int) ([]model.Purchase, error) {
	args := m.Called(ctx, sessionID, limit)
	purchases, _ := args.Get(0).([]model.Purchase)
	return purchases, args.Error(1)
}

func (m *PurchaseRepoMock) FindByID(ctx context.Context, purchaseID string) (model.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	p, _ := args.Get(0).(model.Purchase)
	return p, args.Error(1)
}

func (m *PurchaseRepoMock) ListItemsByPurchaseID(ctx context.Context, purchaseID string) ([]model.PurchaseItem, error) {
	args := m.Called(ctx, purchaseID)
	items, _ := args.Get(0).([]model.PurchaseItem)
	return items, args.Error(1)
}

// =====================
// TransactionManager stub
// =====================

// txReposStub はトランザクションを張らず、そのままmockを返す。
type txReposStub struct {
	sessions  *SessionRepoMock
	carts     *CartRepoMock
	cartItems *CartItemRepoMock
	products  *ProductRepoMock
	purchases *PurchaseRepoMock
}

func (r *txReposStub) Sessions() repo.SessionRepository   { return r.sessions }
func (r *txReposStub) Carts() repo.CartRepository         { return r.carts }
func (r *txReposStub) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *txReposStub) Products() repo.ProductRepository   { return r.products }
func (r *txReposStub) Purchases() repo.PurchaseRepository { return r.purchases }

type txManagerStub struct {
	repos *txReposStub
}

func newTxManagerStub() *txManagerStub {
	return &txManagerStub{
		repos: &txReposStub{
			sessions:  new(SessionRepoMock),
			carts:     new(CartRepoMock),
			cartItems: new(CartItemRepoMock),
			products:  new(ProductRepoMock),
			purchases: new(PurchaseRepoMock),
		},
	}
}

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

func assertErrContains(t *testing.T, err error, want string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), want)
	}
}
