package service

import (
	"errors"
	"testing"

	"github.com/Hidayat0507/tradebot-sub001/internal/botconfig"
	"github.com/Hidayat0507/tradebot-sub001/internal/testutil"
	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/Hidayat0507/tradebot-sub001/pkg/nostd"
	"github.com/go-orz/orz"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBotService(t *testing.T, db *gorm.DB) *BotService {
	t.Helper()
	return NewBotService(testutil.Logger(), db, botconfig.NewValidator(botconfig.TradingExchanges), nostd.NewSealer("test-key"))
}

func botPayload() map[string]any {
	return map[string]any{
		"name":       "Grid Bot",
		"exchange":   "binance",
		"pair":       "BTC/USDT",
		"api_key":    "abcd1234efgh",
		"api_secret": "secret-value",
	}
}

func requireAPIError(t *testing.T, err error) *xe.APIError {
	t.Helper()
	var apiErr *xe.APIError
	require.True(t, errors.As(err, &apiErr), "expected *xe.APIError, got %v", err)
	return apiErr
}

func requireOrzError(t *testing.T, want *orz.Error, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, want), "expected %v, got %v", want, err)
}
