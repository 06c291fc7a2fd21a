package botconfig

import (
	"fmt"
	"strings"

	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
)

// 交易信号字段
const (
	FieldBotID           = "bot_id"
	FieldSymbol          = "symbol"
	FieldAction          = "action"
	FieldPrice           = "price"
	FieldOrderSize       = "order_size"
	FieldAmount          = "amount"
	FieldStoplossPercent = "stoplossPercent"
	FieldStrategy        = "strategy"
	FieldSecret          = "secret"
)

// Action 信号方向
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

func (a Action) String() string {
	return string(a)
}

var (
	alertTextRules = []textRule{
		{key: FieldBotID, message: "Bot ID is required"},
		{key: FieldSymbol, message: "Symbol is required",
			maxLen: MaxSymbolLength, tooLong: "Symbol must be at most 32 characters"},
		{key: FieldAction, message: "Action is required"},
	}

	alertNumberRules = []numberRule{
		{key: FieldPrice, tag: "gt=0", message: "Price must be a positive number"},
		{key: FieldOrderSize, tag: "gt=0", message: "Order size must be a positive number"},
		{key: FieldAmount, tag: "gt=0", message: "Amount must be a positive number"},
		{key: FieldStoplossPercent, message: "Stoploss percent must be a number"},
	}
)

// WebhookAlert 校验通过的交易信号
type WebhookAlert struct {
	BotID           string   `json:"bot_id"`
	Symbol          string   `json:"symbol"`
	Action          Action   `json:"action"`
	Price           *float64 `json:"price,omitempty"`
	OrderSize       *float64 `json:"order_size,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	StoplossPercent *float64 `json:"stoplossPercent,omitempty"`
	Strategy        string   `json:"strategy,omitempty"`
	Secret          string   `json:"-"`
}

// ValidateWebhookAlert 校验顺序与机器人配置一致：必填、数值、枚举
func (v *Validator) ValidateWebhookAlert(payload map[string]any) (WebhookAlert, error) {
	if payload == nil {
		return WebhookAlert{}, xe.BadRequest(alertTextRules[0].message)
	}

	texts, err := v.checkTexts(payload, alertTextRules)
	if err != nil {
		return WebhookAlert{}, err
	}

	numbers := make(map[string]*float64, len(alertNumberRules))
	for _, rule := range alertNumberRules {
		value, present, ok := lookupNumber(payload, rule.key)
		if !present {
			continue
		}
		if !ok {
			return WebhookAlert{}, xe.BadRequest(rule.message)
		}
		if rule.tag != "" {
			if err := v.validate.Var(value, rule.tag); err != nil {
				return WebhookAlert{}, xe.BadRequest(rule.message)
			}
		}
		numbers[rule.key] = &value
	}

	action := strings.ToLower(texts[FieldAction])
	if err := v.validate.Var(action, "oneof=buy sell"); err != nil {
		return WebhookAlert{}, xe.BadRequest("Action must be buy or sell")
	}

	strategy := lookupText(payload, FieldStrategy)
	if err := v.validate.Var(strategy, fmt.Sprintf("max=%d", MaxStrategyLength)); err != nil {
		return WebhookAlert{}, xe.BadRequest("Strategy must be at most 100 characters")
	}

	return WebhookAlert{
		BotID:           texts[FieldBotID],
		Symbol:          texts[FieldSymbol],
		Action:          Action(action),
		Price:           numbers[FieldPrice],
		OrderSize:       numbers[FieldOrderSize],
		Amount:          numbers[FieldAmount],
		StoplossPercent: numbers[FieldStoplossPercent],
		Strategy:        strategy,
		Secret:          lookupText(payload, FieldSecret),
	}, nil
}

// NormalizeSymbol 统一交易对格式，BTC/USDT、btc-usdt 均为 BTCUSDT
func NormalizeSymbol(symbol string) string {
	r := strings.NewReplacer("/", "", "-", "", "_", "", " ", "")
	return strings.ToUpper(r.Replace(symbol))
}
