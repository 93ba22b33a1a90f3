package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrValidation базовая ошибка валидации запроса
var ErrValidation = errors.New("validation failed")

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()

		// В сообщениях используем имена полей из json тегов
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("hhmm", timeOfDayField)
		_ = validate.RegisterValidation("date", dateField)
	})
	return validate
}

// Struct проверяет структуру по тегам validate
// Возвращает ошибку, оборачивающую ErrValidation, с описанием первого нарушенного правила
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, describe(fieldErrs[0]))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "hhmm":
		return fmt.Sprintf("%s must be in HH:MM format", fe.Field())
	case "date":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s rule", fe.Field(), fe.Tag())
	}
}

func timeOfDayField(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func dateField(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
