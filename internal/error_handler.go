package internal

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Hidayat0507/tradebot-sub001/internal/xe"
	"github.com/go-orz/orz"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func WithErrorHandler(logger *zap.Logger) func(next echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := next(c); err != nil {
				var ae *xe.APIError
				if errors.As(err, &ae) {
					body := orz.Map{
						"success": false,
						"error":   ae.Message,
					}
					if ae.Help != "" {
						body["help"] = ae.Help
					}
					return c.JSON(ae.StatusCode, body)
				}

				var he *echo.HTTPError
				if errors.As(err, &he) {
					return c.JSON(he.Code, orz.Map{
						"success": false,
						"error":   fmt.Sprint(he.Message),
					})
				}

				var oe *orz.Error
				if errors.As(err, &oe) {
					return c.JSON(orzStatus(err), orz.Map{
						"success": false,
						"code":    oe.Code,
						"error":   oe.Error(),
					})
				}

				logger.Error("api",
					zap.String("method", c.Request().Method),
					zap.String("path", c.Path()),
					zap.Error(err))

				return c.JSON(http.StatusInternalServerError, orz.Map{
					"success": false,
					"error":   "Internal server error",
				})
			}
			return nil
		}
	}
}

func orzStatus(err error) int {
	switch {
	case errors.Is(err, xe.ErrBotNotFound), errors.Is(err, xe.ErrCredentialNotFound):
		return http.StatusNotFound
	case errors.Is(err, xe.ErrBotDisabled):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
