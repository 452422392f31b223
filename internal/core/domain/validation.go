package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// emailPattern accepts user@example.com, A_US-ER@foo.bar.org, alice+bob@baz.cn
// and rejects commas, missing TLDs, underscores or plus signs in the domain
// and consecutive dots.
var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-]+(\.[a-z\d\-]+)*\.[a-z]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validator exposes the shared validator so the transport layer checks request
// payloads with the same custom tags.
func Validator() *validator.Validate {
	return validate
}

// ValidationError lists the human-readable problems found on a model.
type ValidationError struct {
	kind     error
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.kind, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

func validateStruct(s any, kind error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", kind, err)
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, FieldMessage(fe))
	}
	return &ValidationError{kind: kind, Messages: msgs}
}

// FieldMessage converts a single validator.FieldError into a readable message.
func FieldMessage(fe validator.FieldError) string {
	field := toSnake(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return field + " can't be blank"
	case "mailbox", "email":
		return field + " is invalid"
	case "max":
		return fmt.Sprintf("%s is too long (maximum is %s characters)", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s is too short (minimum is %s characters)", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s doesn't match %s", field, toSnake(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
