package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	sessionH *handler.SessionHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	purchaseH *handler.PurchaseHandler,
	healthH *handler.HealthHandler,
) {
	sessionH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
	purchaseH.RegisterRoutes(e)
	healthH.RegisterRoutes(e)
}
