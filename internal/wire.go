//go:build wireinject
// +build wireinject

package internal

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/handler"
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
)

var (
	handlerSet = wire.NewSet(
		handler.NewBotHandler,
		handler.NewWebhookHandler,
		handler.NewCredentialHandler,
		handler.NewExchangeHandler,
		handler.NewStatsHandler,
	)

	serviceSet = wire.NewSet(
		provideBotValidator,
		provideSealer,
		provideNotifier,
		service.NewBotService,
		service.NewWebhookService,
		service.NewCredentialService,
		service.NewStatsService,
		service.NewAlertJanitor,
	)
)

// InitializeApp 初始化应用
func InitializeApp(logger *zap.Logger, db *gorm.DB, conf *config.Config) (*AppComponents, error) {
	wire.Build(
		handlerSet,
		serviceSet,
		provideRequestValidator,
		wire.Struct(new(AppComponents), "*"),
	)
	return nil, nil
}
