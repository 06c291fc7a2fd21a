package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hidayat0507/tradebot-sub001/internal"
	"github.com/Hidayat0507/tradebot-sub001/internal/config"
	"github.com/Hidayat0507/tradebot-sub001/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type response struct {
	Success        bool            `json:"success"`
	Data           json.RawMessage `json:"data"`
	Error          string          `json:"error"`
	Help           string          `json:"help"`
	Code           int             `json:"code"`
	Status         string          `json:"status"`
	SimulationMode bool            `json:"simulation_mode"`
}

func newServer(t *testing.T, simulation bool) *echo.Echo {
	t.Helper()
	conf := &config.Config{}
	conf.Trading.SimulationMode = simulation
	conf.Security.CredentialKey = "test-key"
	conf.Normalize()

	components, err := internal.InitializeApp(testutil.Logger(), testutil.SetupDB(t), conf)
	require.NoError(t, err)

	e := echo.New()
	internal.Mount(e, testutil.Logger(), components)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) (int, response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
