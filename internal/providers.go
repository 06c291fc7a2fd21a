package internal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/Hidayat0507/tradebot-sub001/internal/telegram"
	"github.com/Hidayat0507/tradebot-sub001/pkg/nostd"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const telegramHTTPTimeout = 10 * time.Second

// provideBotValidator 机器人配置只允许交易白名单
func provideBotValidator() *botconfig.Validator {
	return botconfig.NewValidator(botconfig.TradingExchanges)
}

// provideRequestValidator echo 请求体校验器，注册交易所白名单tag
func provideRequestValidator() (*nostd.CustomValidator, error) {
	cv := &nostd.CustomValidator{Validator: validator.New()}
	if err := cv.TransInit(); err != nil {
		return nil, fmt.Errorf("init validator translations: %w", err)
	}
	if err := botconfig.RegisterValidations(cv.Validator); err != nil {
		return nil, fmt.Errorf("register exchange validations: %w", err)
	}

	translations := map[string]string{
		botconfig.TagTradingExchange:    "{0} is not a supported trading exchange",
		botconfig.TagCredentialExchange: "{0} is not a supported exchange",
	}
	for tag, text := range translations {
		if err := cv.RegisterTranslation(tag, text); err != nil {
			return nil, fmt.Errorf("register translation %s: %w", tag, err)
		}
	}
	return cv, nil
}

// provideSealer 未配置口令时使用随机口令，重启后已保存的密钥将无法解密
func provideSealer(conf *config.Config, logger *zap.Logger) *nostd.Sealer {
	secret := conf.Security.CredentialKey
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			logger.Fatal("failed to generate credential key", zap.Error(err))
		}
		secret = hex.EncodeToString(buf)
		logger.Warn("security.credential_key not configured; using an ephemeral key, stored exchange credentials will not survive a restart")
	}
	return nostd.NewSealer(secret)
}

// provideNotifier 未启用时返回nil接口
func provideNotifier(logger *zap.Logger, conf *config.Config) service.Notifier {
	if !conf.Telegram.Enabled {
		return nil
	}

	tg, err := telegram.NewTelegram(logger, telegram.Settings{
		Token:  conf.Telegram.Token,
		Client: &http.Client{Timeout: telegramHTTPTimeout},
	})
	if err != nil {
		logger.Error("failed to init telegram", zap.Error(err))
		return nil
	}
	return tg
}
