package internal

import (
	"fmt"
	"net/http"

	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/handler"
	"github.com/Hidayat0507/tradebot-sub001/internal/models"
	"github.com/Hidayat0507/tradebot-sub001/internal/service"
	"github.com/Hidayat0507/tradebot-sub001/pkg/nostd"
	"github.com/go-orz/orz"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Run(configPath string) error {
	app := NewTradebotApp()

	framework, err := orz.NewFramework(
		orz.WithConfig(configPath),
		orz.WithLoggerFromConfig(),
		orz.WithDatabase(),
		orz.WithHTTP(),
		orz.WithApplication(app),
	)
	if err != nil {
		return err
	}

	defer app.Close()
	return framework.Run()
}

func NewTradebotApp() *TradebotApp {
	return &TradebotApp{}
}

var _ orz.Application = (*TradebotApp)(nil)

type AppComponents struct {
	BotHandler        *handler.BotHandler
	WebhookHandler    *handler.WebhookHandler
	CredentialHandler *handler.CredentialHandler
	ExchangeHandler   *handler.ExchangeHandler
	StatsHandler      *handler.StatsHandler

	AlertJanitor *service.AlertJanitor
	Validator    *nostd.CustomValidator
}

type TradebotApp struct {
	components *AppComponents
	conf       *config.Config
	logger     *zap.Logger
}

// GetComponents 获取应用组件
func (r *TradebotApp) GetComponents() *AppComponents {
	return r.components
}

func (r *TradebotApp) Configure(app *orz.App) error {
	logger := app.Logger()
	e := app.GetEcho()
	db := app.GetDatabase()

	var conf config.Config
	err := app.GetConfig().App.Unmarshal(&conf)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}
	conf.Normalize()

	if err := Migrate(db); err != nil {
		logger.Fatal("database auto migrate failed", zap.Error(err))
	}

	components, err := InitializeApp(logger, db, &conf)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %v", err)
	}
	r.components = components
	r.conf = &conf
	r.logger = logger

	if err := r.Init(); err != nil {
		logger.Fatal("app init failed", zap.Error(err))
	}

	e.HidePort = true
	e.HideBanner = true
	Mount(e, logger, components)
	return nil
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.Bot{}, models.Alert{}, models.ExchangeCredential{})
}

// Mount 注册中间件与路由
func Mount(e *echo.Echo, logger *zap.Logger, components *AppComponents) {
	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			sugar := logger.Sugar()
			sugar.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack))
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(WithErrorHandler(logger))
	e.Validator = components.Validator

	api := e.Group("/api")
	{
		components.BotHandler.RegisterRoutes(api)
		components.WebhookHandler.RegisterRoutes(api)
		components.CredentialHandler.RegisterRoutes(api)
		components.ExchangeHandler.RegisterRoutes(api)
		components.StatsHandler.RegisterRoutes(api)
	}
}

func (r *TradebotApp) Init() error {
	r.logger.Info("=================================================")
	r.logger.Info("Tradebot Starting...")
	r.logger.Info("=================================================")

	components := r.GetComponents()
	if components == nil {
		return fmt.Errorf("components not initialized")
	}

	r.logger.Info("trading mode",
		zap.Bool("simulation_mode", r.conf.Trading.SimulationMode),
		zap.Bool("telegram", r.conf.Telegram.Enabled))

	return components.AlertJanitor.Start()
}

// Close 停止后台任务
func (r *TradebotApp) Close() {
	if r.components != nil {
		r.components.AlertJanitor.Stop()
	}
}
