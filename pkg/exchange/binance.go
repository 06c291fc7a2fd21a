package exchange

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/adshao/go-binance/v2"
)

// BinanceClient Binance现货API客户端，仅用于查询交易对
type BinanceClient struct {
	client *binance.Client
}

var _ MarketLister = (*BinanceClient)(nil)

// NewBinanceClient 创建Binance客户端，公共接口无需密钥
func NewBinanceClient(apiKey, secretKey, proxyURL string, testnet bool) *BinanceClient {
	if testnet {
		// 需在创建客户端之前设置
		binance.UseTestnet = true
	}

	var client *binance.Client
	if proxyURL != "" {
		client = binance.NewProxiedClient(apiKey, secretKey, proxyURL)
	} else {
		client = binance.NewClient(apiKey, secretKey)
	}

	return &BinanceClient{client: client}
}

// WithBaseURL 替换API地址
func (b *BinanceClient) WithBaseURL(baseURL string) *BinanceClient {
	b.client.BaseURL = strings.TrimRight(baseURL, "/")
	return b
}

// ListMarkets 获取全部现货交易对
func (b *BinanceClient) ListMarkets(ctx context.Context) ([]Market, error) {
	info, err := b.client.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange info: %w", err)
	}

	markets := make([]Market, 0, len(info.Symbols))
	for _, s := range info.Symbols {
		markets = append(markets, Market{
			Symbol: s.Symbol,
			Base:   s.BaseAsset,
			Quote:  s.QuoteAsset,
			Status: s.Status,
		})
	}
	sortMarkets(markets)
	return markets, nil
}

func sortMarkets(markets []Market) {
	slices.SortFunc(markets, func(a, b Market) int {
		return strings.Compare(a.Symbol, b.Symbol)
	})
}
