package record

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// FieldError describes one rejected field of a record.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is returned when a record violates its invariants at creation time.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid record: " + strings.Join(msgs, ", ")
}

var (
	validatorOnce    sync.Once
	recordValidator  *validator.Validate
	recordTranslator ut.Translator
	validatorErr     error
)

// Validate checks a CheckIn or Journal and returns a *ValidationError describing every violation.
func Validate(r any) error {
	validatorOnce.Do(func() {
		recordValidator, recordTranslator, validatorErr = newValidator()
	})
	if validatorErr != nil {
		return fmt.Errorf("newValidator() > %w", validatorErr)
	}

	err := recordValidator.Struct(r)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate record: %w", err)
	}

	result := &ValidationError{}
	for _, fe := range validationErrors {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(recordTranslator),
		})
	}
	return result
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	customs := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{
			tag:     "emotion",
			fn:      func(fl validator.FieldLevel) bool { return IsKnownEmotion(fl.Field().String()) },
			message: "{0} must be one of " + strings.Join(Emotions, ", "),
		},
		{
			tag: "timestamp",
			fn: func(fl validator.FieldLevel) bool {
				t, ok := fl.Field().Interface().(time.Time)
				return ok && !t.IsZero()
			},
			message: "{0} must be set",
		},
	}
	for _, c := range customs {
		if err := validate.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", c.tag, err)
		}
		message := c.message
		tag := c.tag
		if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}

	return validate, trans, nil
}
