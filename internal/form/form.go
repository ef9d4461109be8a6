// Package form defines the flat field sets accepted by the write endpoints
// and validates them before anything touches the store. Validation collects
// every field-level problem in one pass so the client can re-render the
// whole form with all messages at once.
package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field name the client submitted.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps a field name to the list of messages for that field.
type Errors map[string][]string

// Check validates a payload struct and returns all accumulated field
// errors. A nil result means the payload is valid.
func Check(payload any) Errors {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"": {err.Error()}}
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

// message renders one validation failure as user-facing text.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "url":
		return "must be a valid URL"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gt":
		return "must be a positive id"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
