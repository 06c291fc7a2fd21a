package xe

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadRequest(t *testing.T) {
	err := BadRequest("Name is required")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Name is required", err.Error())
	assert.Empty(t, err.Help)
}

func TestWithHelpCopies(t *testing.T) {
	base := BadRequest("Unsupported exchange: kraken")
	withHelp := base.WithHelp("Supported exchanges: binance")

	assert.Empty(t, base.Help)
	assert.Equal(t, "Supported exchanges: binance", withHelp.Help)
	assert.Equal(t, base.Message, withHelp.Message)
}

func TestAPIErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create bot: %w", BadRequest("Trading pair is required"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Trading pair is required", apiErr.Message)
}
