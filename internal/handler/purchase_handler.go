package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/purchase のHTTP
type PurchaseHandler struct {
	uc *usecase.PurchaseUsecase
}

// DI
func NewPurchaseHandler(uc *usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// 購入のルートを登録
func (h *PurchaseHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/purchase", h.checkout)
	e.GET("/api/purchases", h.list)
	e.GET("/api/purchases/:id", h.detail)
}

func (h *PurchaseHandler) checkout(c echo.Context) error {
	out, err := h.uc.Checkout(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PurchaseHandler) list(c echo.Context) error {
	out, err := h.uc.ListMyPurchases(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *PurchaseHandler) detail(c echo.Context) error {
	id := c.Param("id")

	out, err := h.uc.GetPurchaseDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
