package nostd

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRequest struct {
	Exchange string `json:"exchange" validate:"required,venue"`
	Label    string `json:"label" validate:"required,max=10"`
}

func newTestValidator(t *testing.T) *CustomValidator {
	t.Helper()
	cv := &CustomValidator{Validator: validator.New()}
	require.NoError(t, cv.TransInit())
	require.NoError(t, cv.Validator.RegisterValidation("venue", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "binance"
	}))
	require.NoError(t, cv.RegisterTranslation("venue", "{0} is not a supported exchange"))
	return cv
}

func TestCustomValidatorTranslates(t *testing.T) {
	cv := newTestValidator(t)

	err := cv.Validate(&linkRequest{Exchange: "binance"})
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "label is a required field", he.Message)

	err = cv.Validate(&linkRequest{Exchange: "kraken", Label: "main"})
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "exchange is not a supported exchange", he.Message)

	assert.NoError(t, cv.Validate(&linkRequest{Exchange: "binance", Label: "main"}))
}

func TestRegisterTranslationRequiresInit(t *testing.T) {
	cv := &CustomValidator{Validator: validator.New()}
	assert.Error(t, cv.RegisterTranslation("venue", "{0}"))
}
