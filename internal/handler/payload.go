package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
)

const invalidPayloadMessage = "Invalid JSON payload"

// readPayload 读取请求体，只接受 JSON 对象
func readPayload(c echo.Context) (map[string]any, []byte, error) {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, nil, xe.BadRequest(invalidPayloadMessage)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return nil, nil, xe.BadRequest(invalidPayloadMessage)
	}
	return payload, raw, nil
}

func success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, orz.Map{
		"success": true,
		"data":    data,
	})
}

func created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, orz.Map{
		"success": true,
		"data":    data,
	})
}
