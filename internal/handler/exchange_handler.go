package handler

import (
	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/labstack/echo/v4"
)

type ExchangeHandler struct{}

func NewExchangeHandler() *ExchangeHandler {
	return &ExchangeHandler{}
}

// List 支持的交易所
// GET /api/exchanges
func (h *ExchangeHandler) List(c echo.Context) error {
	return success(c, map[string][]string{
		"trading":     botconfig.TradingExchanges.List(),
		"credentials": botconfig.CredentialExchanges.List(),
	})
}

func (h *ExchangeHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/exchanges", h.List)
}
