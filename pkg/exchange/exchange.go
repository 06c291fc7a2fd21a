package exchange

import (
	"context"
	"strings"

	"github.com/samber/lo"
)

// MarketLister 交易所行情元数据，只读
type MarketLister interface {
	ListMarkets(ctx context.Context) ([]Market, error)
}

// FilterByAsset 筛选基础币或计价币为 asset 的交易对，按 Symbol 排序
func FilterByAsset(markets []Market, asset string) []Market {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	filtered := lo.Filter(markets, func(m Market, _ int) bool {
		return m.Base == asset || m.Quote == asset
	})
	sortMarkets(filtered)
	return filtered
}
