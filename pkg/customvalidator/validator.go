// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"regexp"
	"strings"

	"gearguard/pkg/constants"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// New собирает валидатор со всеми нашими правилами.
// Если правило не зарегистрировалось, сервер стартовать не должен.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)
	registerNullTypes(v)
	if err := RegisterCustomValidations(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}
	return v
}

// RegisterCustomValidations регистрирует теги, которые мы используем в DTO.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("custom_email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	return nil
}

// В сообщениях об ошибках поле называется так же, как в JSON.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isRequestType(fl validator.FieldLevel) bool {
	return constants.IsValidRequestType(fl.Field().String())
}

func isRequestStatus(fl validator.FieldLevel) bool {
	return constants.IsValidRequestStatus(fl.Field().String())
}
