package xe

import (
	"net/http"

	"github.com/go-orz/orz"
)

var (
	ErrBotNotFound        = orz.NewError(20404, "Bot not found")
	ErrBotDisabled        = orz.NewError(20409, "Bot is disabled")
	ErrSymbolMismatch     = orz.NewError(20400, "Alert symbol does not match bot pair")
	ErrCredentialNotFound = orz.NewError(30404, "Exchange credential not found")
)

// APIError 面向客户端的错误，携带HTTP状态码
type APIError struct {
	StatusCode int
	Message    string
	Help       string
}

func (e *APIError) Error() string {
	return e.Message
}

// WithHelp 返回附带提示信息的副本
func (e *APIError) WithHelp(help string) *APIError {
	c := *e
	c.Help = help
	return &c
}

func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// BadRequest 参数校验失败
func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, message)
}
