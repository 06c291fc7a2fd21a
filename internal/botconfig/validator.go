package botconfig

import (
	"fmt"
	"strings"

	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/go-playground/validator/v10"
)

const tagAllowListed = "allow_listed"

// Validator 将不可信的原始数据转换为 BotConfiguration
//
// 无共享可变状态，可并发调用。
type Validator struct {
	validate  *validator.Validate
	exchanges ExchangeSet
}

// NewValidator 使用指定的交易所白名单创建校验器
func NewValidator(exchanges ExchangeSet) *Validator {
	v := validator.New()
	// 注册失败只可能是tag为空或与内置tag冲突
	if err := v.RegisterValidation(tagAllowListed, allowListed(exchanges)); err != nil {
		panic(fmt.Errorf("register %s: %w", tagAllowListed, err))
	}
	return &Validator{
		validate:  v,
		exchanges: exchanges,
	}
}

var defaultValidator = NewValidator(TradingExchanges)

// ValidateBotData 使用交易白名单校验机器人配置
func ValidateBotData(payload map[string]any) (BotConfiguration, error) {
	return defaultValidator.ValidateBotData(payload)
}

// ValidateWebhookAlert 校验交易信号
func ValidateWebhookAlert(payload map[string]any) (WebhookAlert, error) {
	return defaultValidator.ValidateWebhookAlert(payload)
}

// Exchanges 返回校验器引用的白名单
func (v *Validator) Exchanges() ExchangeSet {
	return v.exchanges
}

// ValidateBotData 按固定顺序校验，返回第一个失败项
func (v *Validator) ValidateBotData(payload map[string]any) (BotConfiguration, error) {
	if payload == nil {
		return BotConfiguration{}, xe.BadRequest(botTextRules[0].message)
	}

	texts, err := v.checkTexts(payload, botTextRules)
	if err != nil {
		return BotConfiguration{}, err
	}

	numbers := make(map[string]*float64, len(botNumberRules))
	for _, rule := range botNumberRules {
		value, present, ok := lookupNumber(payload, rule.key)
		if !present {
			continue
		}
		if !ok {
			return BotConfiguration{}, xe.BadRequest(rule.message)
		}
		if rule.tag != "" {
			if err := v.validate.Var(value, rule.tag); err != nil {
				return BotConfiguration{}, xe.BadRequest(rule.message)
			}
		}
		numbers[rule.key] = &value
	}

	enabled, ok := lookupBool(payload, FieldEnabled)
	if !ok {
		return BotConfiguration{}, xe.BadRequest("Enabled must be a boolean")
	}

	exchange := texts[FieldExchange]
	if err := v.validate.Var(exchange, tagAllowListed); err != nil {
		return BotConfiguration{}, xe.BadRequest(fmt.Sprintf("Unsupported exchange: %s", exchange)).
			WithHelp("Supported exchanges: " + strings.Join(v.exchanges.List(), ", "))
	}

	return BotConfiguration{
		Name:               texts[FieldName],
		Exchange:           exchange,
		Pair:               texts[FieldPair],
		MaxPositionSize:    numbers[FieldMaxPositionSize],
		StoplossPercentage: numbers[FieldStoplossPercentage],
		Enabled:            enabled,
		APIKey:             texts[FieldAPIKey],
		APISecret:          texts[FieldAPISecret],
	}, nil
}

// checkTexts 按顺序校验必填与长度，返回去除空白后的值
func (v *Validator) checkTexts(payload map[string]any, rules []textRule) (map[string]string, error) {
	texts := make(map[string]string, len(rules))
	for _, rule := range rules {
		value := lookupText(payload, rule.key)
		if err := v.validate.Var(value, "required"); err != nil {
			return nil, xe.BadRequest(rule.message)
		}
		if rule.maxLen > 0 {
			if err := v.validate.Var(value, fmt.Sprintf("max=%d", rule.maxLen)); err != nil {
				return nil, xe.BadRequest(rule.tooLong)
			}
		}
		texts[rule.key] = value
	}
	return texts, nil
}
