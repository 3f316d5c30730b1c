package validation

import (
	"reflect"
	"strings"

	"scheduler-api/core/errors"
	"scheduler-api/core/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo.Validator. Field names in
// errors follow the json tag.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// BindAndValidate decodes the request body into payload and validates it.
// Any failure is reported as invalid data; the detail goes to the log only.
func BindAndValidate(c echo.Context, payload any) *errors.AppError {
	if err := c.Bind(payload); err != nil {
		logger.FromContext(c.Request().Context()).Debug().Err(err).Msg("Validation:Bind")
		return errors.InvalidData(err)
	}

	if err := c.Validate(payload); err != nil {
		logger.FromContext(c.Request().Context()).Debug().
			Strs("fields", FieldErrors(err)).
			Msg("Validation:Struct")
		return errors.InvalidData(err)
	}

	return nil
}

// FieldErrors flattens a validator error into "field:tag" entries.
func FieldErrors(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, fe.Field()+":"+fe.Tag())
	}
	return out
}
