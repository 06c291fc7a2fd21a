package config

type Config struct {
	Trading  TradingConf  `json:"trading"`
	Security SecurityConf `json:"security"`
	Telegram TelegramConf `json:"telegram"`
	Webhook  WebhookConf  `json:"webhook"`
}

type TradingConf struct {
	SimulationMode bool `json:"simulation_mode"` // 模拟模式，信号只记录不下单
}

type SecurityConf struct {
	CredentialKey string `json:"credential_key"` // 加密交易所API密钥的口令，为空时随机生成
}

type TelegramConf struct {
	Enabled       bool   `json:"enabled"`
	Token         string `json:"token"`
	ChatID        string `json:"chat_id"`
	AlertTemplate string `json:"alert_template"` // 支持 {bot} {exchange} {action} {symbol} {price} {status}
}

type WebhookConf struct {
	RetentionDays int    `json:"retention_days"` // 信号保留天数，默认30
	PruneSpec     string `json:"prune_spec"`     // 清理任务cron表达式，默认 @hourly
}

const (
	DefaultAlertTemplate = "*{bot}* {action} {symbol} @ {price} on {exchange} ({status})"
	DefaultRetentionDays = 30
	DefaultPruneSpec     = "@hourly"
)

// Normalize 填充默认值
func (c *Config) Normalize() {
	if c.Telegram.AlertTemplate == "" {
		c.Telegram.AlertTemplate = DefaultAlertTemplate
	}
	if c.Webhook.RetentionDays <= 0 {
		c.Webhook.RetentionDays = DefaultRetentionDays
	}
	if c.Webhook.PruneSpec == "" {
		c.Webhook.PruneSpec = DefaultPruneSpec
	}
}
