package handler

import (
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

// BotHandler 机器人配置接口
type BotHandler struct {
	botService *service.BotService
}

func NewBotHandler(botService *service.BotService) *BotHandler {
	return &BotHandler{botService: botService}
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// Create 创建机器人
// POST /api/bots
func (h *BotHandler) Create(c echo.Context) error {
	payload, _, err := readPayload(c)
	if err != nil {
		return err
	}
	bot, err := h.botService.CreateBot(c.Request().Context(), payload)
	if err != nil {
		return err
	}
	return created(c, bot)
}

// List 机器人列表
// GET /api/bots
func (h *BotHandler) List(c echo.Context) error {
	bots, err := h.botService.ListBots(c.Request().Context())
	if err != nil {
		return err
	}
	return success(c, bots)
}

// Get 机器人详情
// GET /api/bots/:id
func (h *BotHandler) Get(c echo.Context) error {
	bot, err := h.botService.GetBot(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return success(c, bot)
}

// Update 整体更新机器人配置
// PUT /api/bots/:id
func (h *BotHandler) Update(c echo.Context) error {
	payload, _, err := readPayload(c)
	if err != nil {
		return err
	}
	bot, err := h.botService.UpdateBot(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return err
	}
	return success(c, bot)
}

// SetEnabled 启用/停用
// PATCH /api/bots/:id/enabled
func (h *BotHandler) SetEnabled(c echo.Context) error {
	var req setEnabledRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	bot, err := h.botService.SetEnabled(c.Request().Context(), c.Param("id"), *req.Enabled)
	if err != nil {
		return err
	}
	return success(c, bot)
}

// Delete 删除机器人
// DELETE /api/bots/:id
func (h *BotHandler) Delete(c echo.Context) error {
	if err := h.botService.DeleteBot(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return success(c, nil)
}

func (h *BotHandler) RegisterRoutes(api *echo.Group) {
	bots := api.Group("/bots")
	bots.POST("", h.Create)
	bots.GET("", h.List)
	bots.GET("/:id", h.Get)
	bots.PUT("/:id", h.Update)
	bots.PATCH("/:id/enabled", h.SetEnabled)
	bots.DELETE("/:id", h.Delete)
}
