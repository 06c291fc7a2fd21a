package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/repo"
	"github.com/Hidayat0507/tradebot-sub001/internal/telegram"
	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/oklog/ulid/v2"
	"github.com/valyala/fasttemplate"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DefaultAlertLimit = 20
	MaxAlertLimit     = 200

	ReasonBotDisabled    = "bot is disabled"
	ReasonSymbolMismatch = "symbol does not match bot pair"
)

// WebhookService 接收并记录交易信号
type WebhookService struct {
	logger    *zap.Logger
	conf      *config.Config
	validator *botconfig.Validator
	notifier  Notifier
	botRepo   *repo.BotRepo
	alertRepo *repo.AlertRepo
	now       func() time.Time
}

func NewWebhookService(logger *zap.Logger, db *gorm.DB, conf *config.Config, validator *botconfig.Validator, notifier Notifier) *WebhookService {
	return &WebhookService{
		logger:    logger,
		conf:      conf,
		validator: validator,
		notifier:  notifier,
		botRepo:   repo.NewBotRepo(db),
		alertRepo: repo.NewAlertRepo(db),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SimulationMode 是否处于模拟模式
func (s *WebhookService) SimulationMode() bool {
	return s.conf.Trading.SimulationMode
}

// Receive 校验信号并落库
//
// 机器人停用或交易对不匹配时信号仍会以 rejected 状态记录，同时返回对应错误。
func (s *WebhookService) Receive(ctx context.Context, payload map[string]any, raw []byte) (*models.Alert, error) {
	signal, err := s.validator.ValidateWebhookAlert(payload)
	if err != nil {
		return nil, err
	}

	bot, err := s.botRepo.FindById(ctx, signal.BotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrBotNotFound
		}
		return nil, fmt.Errorf("find bot %s: %w", signal.BotID, err)
	}

	if raw == nil {
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal alert payload: %w", err)
		}
	}
	alert := s.newAlert(signal, raw)

	var rejection error
	switch {
	case !bot.Enabled:
		rejection, alert.Reason = xe.ErrBotDisabled, ReasonBotDisabled
	case botconfig.NormalizeSymbol(signal.Symbol) != botconfig.NormalizeSymbol(bot.Pair):
		rejection, alert.Reason = xe.ErrSymbolMismatch, ReasonSymbolMismatch
	}

	if rejection != nil {
		alert.Status = models.AlertStatusRejected
		if err := s.alertRepo.Create(ctx, alert); err != nil {
			s.logger.Error("record rejected alert failed", zap.String("bot_id", bot.ID), zap.Error(err))
		}
		s.logger.Warn("alert rejected",
			zap.String("bot_id", bot.ID),
			zap.String("symbol", signal.Symbol),
			zap.String("reason", alert.Reason))
		return alert, rejection
	}

	alert.Status = models.AlertStatusAccepted
	if s.SimulationMode() {
		alert.Status = models.AlertStatusSimulated
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}

	s.logger.Info("alert received",
		zap.String("alert_id", alert.ID),
		zap.String("bot_id", bot.ID),
		zap.String("action", alert.Action),
		zap.String("status", string(alert.Status)))

	s.notify(&bot, alert)
	return alert, nil
}

// RecentAlerts 获取机器人最近的信号，limit 超出范围时取默认值或上限
func (s *WebhookService) RecentAlerts(ctx context.Context, botID string, limit int) ([]models.Alert, error) {
	if _, err := s.botRepo.FindById(ctx, botID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrBotNotFound
		}
		return nil, fmt.Errorf("find bot %s: %w", botID, err)
	}

	switch {
	case limit <= 0:
		limit = DefaultAlertLimit
	case limit > MaxAlertLimit:
		limit = MaxAlertLimit
	}
	return s.alertRepo.FindRecentByBot(ctx, botID, limit)
}

func (s *WebhookService) newAlert(signal botconfig.WebhookAlert, raw []byte) *models.Alert {
	return &models.Alert{
		ID:              ulid.Make().String(),
		BotID:           signal.BotID,
		Symbol:          signal.Symbol,
		Action:          signal.Action.String(),
		Price:           signal.Price,
		OrderSize:       signal.OrderSize,
		Amount:          signal.Amount,
		StoplossPercent: signal.StoplossPercent,
		Strategy:        signal.Strategy,
		Payload:         datatypes.JSON(raw),
		ReceivedAt:      s.now(),
	}
}

func (s *WebhookService) notify(bot *models.Bot, alert *models.Alert) {
	if s.notifier == nil {
		return
	}
	msg := RenderAlertMessage(s.conf.Telegram.AlertTemplate, bot, alert)
	if err := s.notifier.Notify(s.conf.Telegram.ChatID, msg); err != nil {
		s.logger.Error("send alert notification failed", zap.String("alert_id", alert.ID), zap.Error(err))
	}
}

// RenderAlertMessage 渲染通知模板，模板为空时使用默认模板
func RenderAlertMessage(template string, bot *models.Bot, alert *models.Alert) string {
	if template == "" {
		template = config.DefaultAlertTemplate
	}
	price := "market"
	if alert.Price != nil {
		price = strconv.FormatFloat(*alert.Price, 'f', -1, 64)
	}
	return fasttemplate.ExecuteString(template, "{", "}", map[string]interface{}{
		"bot":      telegram.EscapeMarkdown(bot.Name),
		"exchange": telegram.EscapeMarkdown(bot.Exchange),
		"action":   alert.Action,
		"symbol":   telegram.EscapeMarkdown(alert.Symbol),
		"price":    price,
		"status":   string(alert.Status),
	})
}
