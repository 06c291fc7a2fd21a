package handler

import (
	"net/http"

	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
)

// WebhookHandler 接收 TradingView 等外部信号
type WebhookHandler struct {
	webhookService *service.WebhookService
}

func NewWebhookHandler(webhookService *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// Status 健康检查
// GET /api/webhook
func (h *WebhookHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, orz.Map{
		"success":         true,
		"status":          "ok",
		"simulation_mode": h.webhookService.SimulationMode(),
	})
}

// Receive 接收信号
// POST /api/webhook
func (h *WebhookHandler) Receive(c echo.Context) error {
	payload, raw, err := readPayload(c)
	if err != nil {
		return err
	}
	alert, err := h.webhookService.Receive(c.Request().Context(), payload, raw)
	if err != nil {
		return err
	}
	return success(c, alert)
}

// Alerts 机器人最近的信号
// GET /api/bots/:id/alerts?limit=20
func (h *WebhookHandler) Alerts(c echo.Context) error {
	limit := cast.ToInt(c.QueryParam("limit"))
	alerts, err := h.webhookService.RecentAlerts(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}
	return success(c, alerts)
}

func (h *WebhookHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/webhook", h.Status)
	api.POST("/webhook", h.Receive)
	api.GET("/bots/:id/alerts", h.Alerts)
}
