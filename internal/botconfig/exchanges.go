package botconfig

import (
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	TagTradingExchange    = "trading_exchange"
	TagCredentialExchange = "credential_exchange"
)

// ExchangeSet 交易所白名单，创建后不可修改
type ExchangeSet struct {
	name    string
	members map[string]struct{}
}

func NewExchangeSet(name string, ids ...string) ExchangeSet {
	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return ExchangeSet{name: name, members: members}
}

var (
	// TradingExchanges 机器人交易支持的交易所
	TradingExchanges = NewExchangeSet("trading", "hyperliquid", "binance", "bitget")
	// CredentialExchanges 允许绑定API凭证的交易所
	CredentialExchanges = NewExchangeSet("credential", "binance", "bitget", "bybit", "hyperliquid", "okx")
)

func (s ExchangeSet) Name() string {
	return s.name
}

// Contains 精确匹配，区分大小写
func (s ExchangeSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// List 返回排序后的交易所列表
func (s ExchangeSet) List() []string {
	ids := lo.Keys(s.members)
	slices.Sort(ids)
	return ids
}

// RegisterValidations 注册交易所白名单校验tag
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(TagTradingExchange, allowListed(TradingExchanges)); err != nil {
		return err
	}
	return v.RegisterValidation(TagCredentialExchange, allowListed(CredentialExchanges))
}

func allowListed(set ExchangeSet) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return set.Contains(fl.Field().String())
	}
}
