package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exchangeInfoJSON = `{
  "timezone": "UTC",
  "serverTime": 1700000000000,
  "rateLimits": [],
  "exchangeFilters": [],
  "symbols": [
    {"symbol": "ETHBTC", "status": "TRADING", "baseAsset": "ETH", "quoteAsset": "BTC"},
    {"symbol": "BTCUSDT", "status": "TRADING", "baseAsset": "BTC", "quoteAsset": "USDT"},
    {"symbol": "ETHUSDT", "status": "TRADING", "baseAsset": "ETH", "quoteAsset": "USDT"},
    {"symbol": "BTCFDUSD", "status": "BREAK", "baseAsset": "BTC", "quoteAsset": "FDUSD"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *BinanceClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBinanceClient("", "", "", false).WithBaseURL(srv.URL + "/")
}

func TestListMarkets(t *testing.T) {
	var path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(exchangeInfoJSON))
	})

	markets, err := client.ListMarkets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/v3/exchangeInfo", path)

	require.Len(t, markets, 4)
	assert.Equal(t, "BTCFDUSD", markets[0].Symbol)
	assert.Equal(t, "ETHUSDT", markets[3].Symbol)
	assert.Equal(t, "ETH/BTC", markets[2].Pair())
}

func TestListMarketsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"code":-1003,"msg":"Too many requests"}`))
	})

	_, err := client.ListMarkets(context.Background())
	assert.Error(t, err)
}

func TestFilterByAsset(t *testing.T) {
	markets := []Market{
		{Symbol: "ETHUSDT", Base: "ETH", Quote: "USDT", Status: "TRADING"},
		{Symbol: "BTCUSDT", Base: "BTC", Quote: "USDT", Status: "TRADING"},
		{Symbol: "ETHBTC", Base: "ETH", Quote: "BTC", Status: "TRADING"},
		{Symbol: "BTCFDUSD", Base: "BTC", Quote: "FDUSD", Status: "BREAK"},
	}

	filtered := FilterByAsset(markets, " btc ")
	require.Len(t, filtered, 3)
	assert.Equal(t, []string{"BTCFDUSD", "BTCUSDT", "ETHBTC"}, []string{filtered[0].Symbol, filtered[1].Symbol, filtered[2].Symbol})
	assert.False(t, filtered[0].Trading())

	assert.Empty(t, FilterByAsset(markets, "SOL"))
}
