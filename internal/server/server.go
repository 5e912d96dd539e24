package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて全ルートを登録する。
func New(
	cfg config.Config,
	sessionH *handler.SessionHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	purchaseH *handler.PurchaseHandler,
	healthH *handler.HealthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// ローカル開発用フロント & 本番フロント
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	RegisterRoutes(e, sessionH, productH, cartH, purchaseH, healthH)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
