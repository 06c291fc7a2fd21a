package handler

import (
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

type StatsHandler struct {
	statsService *service.StatsService
}

func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary 看板统计
// GET /api/stats
func (h *StatsHandler) Summary(c echo.Context) error {
	stats, err := h.statsService.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, stats)
}

func (h *StatsHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/stats", h.Summary)
}
