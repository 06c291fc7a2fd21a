package nostd

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

// CustomValidator echo 请求参数校验器
type CustomValidator struct {
	Validator *validator.Validate
	trans     ut.Translator
}

// TransInit 初始化英文错误提示，字段名取 json tag
func (cv *CustomValidator) TransInit() error {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	cv.Validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})

	if err := entranslations.RegisterDefaultTranslations(cv.Validator, trans); err != nil {
		return err
	}
	cv.trans = trans
	return nil
}

// RegisterTranslation 为自定义tag注册提示，text 中 {0} 为字段名
func (cv *CustomValidator) RegisterTranslation(tag, text string) error {
	if cv.trans == nil {
		return errors.New("translator not initialized")
	}
	return cv.Validator.RegisterTranslation(tag, cv.trans,
		func(trans ut.Translator) error {
			return trans.Add(tag, text, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, err := trans.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// Validate 只返回第一个错误
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.Validator.Struct(i)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		msg := errs[0].Error()
		if cv.trans != nil {
			msg = errs[0].Translate(cv.trans)
		}
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	}
	return err
}
