package signup

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fields holds the values entered in the form.
type Fields struct {
	Name     string `validate:"required" label:"name"`
	Email    string `validate:"required,email" label:"email"`
	Password string `validate:"min=6" label:"password"`
}

// FieldError is a failed validation rule of one field.
type FieldError struct {
	Field   string // lower-case field label, e.g. "email"
	Message string
}

// fieldMessages maps field label and failed tag to the message shown to the
// user.
var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Name is required",
	},
	"email": {
		"required": "Email is required",
		"email":    "Enter a valid email address",
	},
	"password": {
		"min": "Password must be at least 6 characters",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("label")
	})
	return v
}

// Validate checks every field and returns at most one error per field, in
// form order. A nil result means the fields are valid.
func Validate(f Fields) []FieldError {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}
