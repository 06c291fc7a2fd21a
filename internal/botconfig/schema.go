package botconfig

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// 机器人配置字段
const (
	FieldName               = "name"
	FieldExchange           = "exchange"
	FieldPair               = "pair"
	FieldMaxPositionSize    = "max_position_size"
	FieldStoplossPercentage = "stoploss_percentage"
	FieldEnabled            = "enabled"
	FieldAPIKey             = "api_key"
	FieldAPISecret          = "api_secret"
)

// 文本字段长度上限，与数据库列宽一致
const (
	MaxNameLength       = 100
	MaxPairLength       = 32
	MaxCredentialLength = 256
	MaxSymbolLength     = 32
	MaxStrategyLength   = 100
)

// textRule 必填文本字段，maxLen 为 0 时不限长度
type textRule struct {
	key     string
	message string
	maxLen  int
	tooLong string
}

// numberRule 可选数值字段，tag为空时只校验类型
type numberRule struct {
	key     string
	tag     string
	message string
}

// 校验顺序即声明顺序：先必填，再数值，最后白名单
var (
	botTextRules = []textRule{
		{key: FieldName, message: "Name is required",
			maxLen: MaxNameLength, tooLong: "Name must be at most 100 characters"},
		{key: FieldExchange, message: "Exchange is required"},
		{key: FieldPair, message: "Trading pair is required",
			maxLen: MaxPairLength, tooLong: "Trading pair must be at most 32 characters"},
		{key: FieldAPIKey, message: "API key is required",
			maxLen: MaxCredentialLength, tooLong: "API key must be at most 256 characters"},
		{key: FieldAPISecret, message: "API secret is required",
			maxLen: MaxCredentialLength, tooLong: "API secret must be at most 256 characters"},
	}

	botNumberRules = []numberRule{
		{key: FieldMaxPositionSize, tag: "gt=0", message: "Position size must be positive"},
		{key: FieldStoplossPercentage, message: "Stoploss percentage must be a number"},
	}
)

// BotConfiguration 校验通过的机器人配置
//
// 值类型，每次修改都需要重新走 ValidateBotData。
type BotConfiguration struct {
	Name               string   `json:"name"`
	Exchange           string   `json:"exchange"`
	Pair               string   `json:"pair"`
	MaxPositionSize    *float64 `json:"max_position_size,omitempty"`
	StoplossPercentage *float64 `json:"stoploss_percentage,omitempty"`
	Enabled            bool     `json:"enabled"`
	APIKey             string   `json:"api_key"`
	APISecret          string   `json:"api_secret"`
}

// Payload 还原为未校验的原始数据，用于修改后重新校验
func (c BotConfiguration) Payload() map[string]any {
	payload := map[string]any{
		FieldName:      c.Name,
		FieldExchange:  c.Exchange,
		FieldPair:      c.Pair,
		FieldEnabled:   c.Enabled,
		FieldAPIKey:    c.APIKey,
		FieldAPISecret: c.APISecret,
	}
	if c.MaxPositionSize != nil {
		payload[FieldMaxPositionSize] = *c.MaxPositionSize
	}
	if c.StoplossPercentage != nil {
		payload[FieldStoplossPercentage] = *c.StoplossPercentage
	}
	return payload
}

// lookupText 取字符串字段并去除首尾空白，非字符串视为缺失
func lookupText(payload map[string]any, key string) string {
	s, ok := payload[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// lookupNumber 返回 (值, 是否存在, 是否为数值)
func lookupNumber(payload map[string]any, key string) (float64, bool, bool) {
	raw, ok := payload[key]
	if !ok || raw == nil {
		return 0, false, true
	}
	f, ok := toNumber(raw)
	return f, true, ok
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case bool:
		return 0, false
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		raw = strings.TrimSpace(v)
	}
	f, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// lookupBool 返回 (值, 是否为布尔)，缺失时为 false
func lookupBool(payload map[string]any, key string) (bool, bool) {
	switch v := payload[key].(type) {
	case nil:
		return false, true
	case bool:
		return v, true
	case string:
		// 只接受 true/false，不区分大小写
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
