package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Hidayat0507/tradebot-sub001/internal/testutil"
	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotServiceCreateSealsCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	bot, err := svc.CreateBot(ctx, botPayload())
	require.NoError(t, err)

	assert.Len(t, bot.ID, 26)
	assert.False(t, bot.Enabled)
	assert.Equal(t, "abcd********", bot.APIKeyHint)
	assert.NotEqual(t, "abcd1234efgh", bot.APIKey)
	assert.NotEqual(t, "secret-value", bot.APISecret)

	stored, err := svc.GetBot(ctx, bot.ID)
	require.NoError(t, err)
	cfg, err := svc.Configuration(stored)
	require.NoError(t, err)
	assert.Equal(t, "abcd1234efgh", cfg.APIKey)
	assert.Equal(t, "secret-value", cfg.APISecret)
	assert.Equal(t, "BTC/USDT", cfg.Pair)
}

func TestBotServiceCreateRejectsInvalidPayload(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	payload := botPayload()
	payload["exchange"] = "kraken"
	_, err := svc.CreateBot(ctx, payload)
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "Unsupported exchange: kraken", apiErr.Message)

	bots, err := svc.ListBots(ctx)
	require.NoError(t, err)
	assert.Empty(t, bots)
}

func TestBotServiceCreateRejectsOversizedFields(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	payload := botPayload()
	payload["name"] = strings.Repeat("n", 1000)
	_, err := svc.CreateBot(ctx, payload)
	assert.Equal(t, "Name must be at most 100 characters", requireAPIError(t, err).Message)

	payload = botPayload()
	payload["api_key"] = strings.Repeat("k", 2000)
	_, err = svc.CreateBot(ctx, payload)
	assert.Equal(t, "API key must be at most 256 characters", requireAPIError(t, err).Message)

	count, err := svc.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestBotServiceGetMissing(t *testing.T) {
	svc := newBotService(t, testutil.SetupDB(t))
	_, err := svc.GetBot(context.Background(), "01HZX3Q6M3T0B6J4P6KX0Q9V1C")
	requireOrzError(t, xe.ErrBotNotFound, err)
}

func TestBotServiceUpdateRevalidates(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	bot, err := svc.CreateBot(ctx, botPayload())
	require.NoError(t, err)

	payload := botPayload()
	payload["pair"] = "ETH/USDT"
	payload["max_position_size"] = 500
	updated, err := svc.UpdateBot(ctx, bot.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "ETH/USDT", updated.Pair)
	require.NotNil(t, updated.MaxPositionSize)
	assert.Equal(t, 500.0, *updated.MaxPositionSize)

	payload["max_position_size"] = -1
	_, err = svc.UpdateBot(ctx, bot.ID, payload)
	assert.Equal(t, "Position size must be positive", requireAPIError(t, err).Message)

	stored, err := svc.GetBot(ctx, bot.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, *stored.MaxPositionSize)
}

func TestBotServiceSetEnabled(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	payload := botPayload()
	payload["stoploss_percentage"] = 2.5
	bot, err := svc.CreateBot(ctx, payload)
	require.NoError(t, err)

	enabled, err := svc.SetEnabled(ctx, bot.ID, true)
	require.NoError(t, err)
	assert.True(t, enabled.Enabled)
	require.NotNil(t, enabled.StoplossPercentage)
	assert.Equal(t, 2.5, *enabled.StoplossPercentage)

	count, err := svc.CountEnabled(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	disabled, err := svc.SetEnabled(ctx, bot.ID, false)
	require.NoError(t, err)
	assert.False(t, disabled.Enabled)

	cfg, err := svc.Configuration(disabled)
	require.NoError(t, err)
	assert.Equal(t, "secret-value", cfg.APISecret)
}

func TestBotServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := newBotService(t, testutil.SetupDB(t))

	bot, err := svc.CreateBot(ctx, botPayload())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBot(ctx, bot.ID))
	_, err = svc.GetBot(ctx, bot.ID)
	requireOrzError(t, xe.ErrBotNotFound, err)

	err = svc.DeleteBot(ctx, bot.ID)
	requireOrzError(t, xe.ErrBotNotFound, err)
}
