package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/session のHTTP
type SessionHandler struct {
	uc *usecase.SessionUsecase
}

// DI
func NewSessionHandler(uc *usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type StartSessionRequest struct {
	ClerkCode string `json:"clerkCode"`
	StoreCode string `json:"storeCode"`
}

// セッションのルートを登録
func (h *SessionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/session/start", h.start)
	e.GET("/api/session", h.getActive)
	e.POST("/api/session/end", h.end)
}

func (h *SessionHandler) start(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Start(c.Request().Context(), usecase.StartSessionInput{
		ClerkCode: req.ClerkCode,
		StoreCode: req.StoreCode,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) getActive(c echo.Context) error {
	out, err := h.uc.GetActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *SessionHandler) end(c echo.Context) error {
	out, err := h.uc.End(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
