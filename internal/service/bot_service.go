package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/repo"
	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/Hidayat0507/tradebot-sub001/pkg/nostd"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BotService 机器人配置管理
type BotService struct {
	*repo.BotRepo

	logger    *zap.Logger
	validator *botconfig.Validator
	sealer    *nostd.Sealer
}

// NewBotService 创建机器人服务
func NewBotService(logger *zap.Logger, db *gorm.DB, validator *botconfig.Validator, sealer *nostd.Sealer) *BotService {
	return &BotService{
		BotRepo:   repo.NewBotRepo(db),
		logger:    logger,
		validator: validator,
		sealer:    sealer,
	}
}

// CreateBot 校验并创建机器人
func (s *BotService) CreateBot(ctx context.Context, payload map[string]any) (*models.Bot, error) {
	cfg, err := s.validator.ValidateBotData(payload)
	if err != nil {
		return nil, err
	}

	bot := &models.Bot{ID: ulid.Make().String()}
	if err := s.apply(bot, cfg); err != nil {
		return nil, err
	}
	if err := s.BotRepo.Create(ctx, bot); err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	s.logger.Info("bot created",
		zap.String("bot_id", bot.ID),
		zap.String("exchange", bot.Exchange),
		zap.String("pair", bot.Pair))
	return bot, nil
}

// GetBot 获取单个机器人
func (s *BotService) GetBot(ctx context.Context, id string) (*models.Bot, error) {
	bot, err := s.BotRepo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xe.ErrBotNotFound
		}
		return nil, fmt.Errorf("find bot %s: %w", id, err)
	}
	return &bot, nil
}

// ListBots 获取全部机器人
func (s *BotService) ListBots(ctx context.Context) ([]models.Bot, error) {
	return s.BotRepo.FindAllNewest(ctx)
}

// UpdateBot 整体替换配置，必须重新校验
func (s *BotService) UpdateBot(ctx context.Context, id string, payload map[string]any) (*models.Bot, error) {
	bot, err := s.GetBot(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg, err := s.validator.ValidateBotData(payload)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, bot, cfg)
}

// SetEnabled 启用/停用机器人，同样走完整校验
func (s *BotService) SetEnabled(ctx context.Context, id string, enabled bool) (*models.Bot, error) {
	bot, err := s.GetBot(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := s.Configuration(bot)
	if err != nil {
		return nil, err
	}
	payload := current.Payload()
	payload[botconfig.FieldEnabled] = enabled

	cfg, err := s.validator.ValidateBotData(payload)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, bot, cfg)
}

// DeleteBot 删除机器人
func (s *BotService) DeleteBot(ctx context.Context, id string) error {
	if _, err := s.GetBot(ctx, id); err != nil {
		return err
	}
	if err := s.BotRepo.DeleteById(ctx, id); err != nil {
		return fmt.Errorf("delete bot %s: %w", id, err)
	}
	s.logger.Info("bot deleted", zap.String("bot_id", id))
	return nil
}

// Configuration 解密后还原机器人配置
func (s *BotService) Configuration(bot *models.Bot) (botconfig.BotConfiguration, error) {
	apiKey, err := s.sealer.Open(bot.APIKey)
	if err != nil {
		return botconfig.BotConfiguration{}, fmt.Errorf("open api key of bot %s: %w", bot.ID, err)
	}
	apiSecret, err := s.sealer.Open(bot.APISecret)
	if err != nil {
		return botconfig.BotConfiguration{}, fmt.Errorf("open api secret of bot %s: %w", bot.ID, err)
	}

	return botconfig.BotConfiguration{
		Name:               bot.Name,
		Exchange:           bot.Exchange,
		Pair:               bot.Pair,
		MaxPositionSize:    bot.MaxPositionSize,
		StoplossPercentage: bot.StoplossPercentage,
		Enabled:            bot.Enabled,
		APIKey:             apiKey,
		APISecret:          apiSecret,
	}, nil
}

func (s *BotService) save(ctx context.Context, bot *models.Bot, cfg botconfig.BotConfiguration) (*models.Bot, error) {
	if err := s.apply(bot, cfg); err != nil {
		return nil, err
	}
	if err := s.BotRepo.Save(ctx, bot); err != nil {
		return nil, fmt.Errorf("save bot %s: %w", bot.ID, err)
	}
	s.logger.Info("bot updated", zap.String("bot_id", bot.ID), zap.Bool("enabled", bot.Enabled))
	return bot, nil
}

func (s *BotService) apply(bot *models.Bot, cfg botconfig.BotConfiguration) error {
	apiKey, err := s.sealer.Seal(cfg.APIKey)
	if err != nil {
		return fmt.Errorf("seal api key: %w", err)
	}
	apiSecret, err := s.sealer.Seal(cfg.APISecret)
	if err != nil {
		return fmt.Errorf("seal api secret: %w", err)
	}

	bot.Name = cfg.Name
	bot.Exchange = cfg.Exchange
	bot.Pair = cfg.Pair
	bot.MaxPositionSize = cfg.MaxPositionSize
	bot.StoplossPercentage = cfg.StoplossPercentage
	bot.Enabled = cfg.Enabled
	bot.APIKey = apiKey
	bot.APISecret = apiSecret
	bot.APIKeyHint = nostd.Mask(cfg.APIKey)
	return nil
}
