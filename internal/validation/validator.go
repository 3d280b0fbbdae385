package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Формат телефона как в каталоге менторов: цифры, пробелы, дефисы, скобки,
// опциональный ведущий плюс
var phoneRegex = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

// Validator обёртка над go-playground/validator с доменными правилами
type Validator struct {
	v *validator.Validate
}

// New создает валидатор с зарегистрированными правилами date, clock и phone
func New() *Validator {
	v := validator.New()

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})

	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("15:04", value)
		return err == nil
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	return &Validator{v: v}
}

// Struct валидирует структуру по тегам validate
func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

// ValidationErrors возвращает типизированные ошибки валидации, если они есть
func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
