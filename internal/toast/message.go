package toast

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidMessage is returned by Publish when the caller violates the
// message contract (currently: a missing title).
var ErrInvalidMessage = errors.New("invalid toast message")

// Message is one active toast. Values are immutable once stored.
type Message struct {
	ID          string
	Category    Category
	Title       string
	Description string // empty when absent
	CreatedAt   time.Time
}

// HasDescription reports whether the message carries a description line.
func (m Message) HasDescription() bool {
	return m.Description != ""
}

// Data is the caller-supplied content of a toast.
type Data struct {
	Category    Category
	Title       string `validate:"required,notblank"`
	Description string
}

// MessageError describes why a Data value was rejected.
type MessageError struct {
	Field  string // struct field name, e.g. "Title"
	Reason string // validator tag that failed, e.g. "required"
}

// Error implements the error interface.
func (e *MessageError) Error() string {
	return fmt.Sprintf("%s: %s failed %q", ErrInvalidMessage, strings.ToLower(e.Field), e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidMessage.
func (e *MessageError) Unwrap() error {
	return ErrInvalidMessage
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// A title made only of whitespace renders as an empty toast.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks the caller contract for d.
func (d Data) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MessageError{Field: fieldErrs[0].Field(), Reason: fieldErrs[0].Tag()}
	}
	return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
}
