// Package forms turns binding/validation failures into per-field
// messages that the templates can render next to each input.
package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Result is the outcome of validating one submitted form.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// Validate converts the error returned by gin's ShouldBind into a
// structured result. A nil error means a valid submission; a
// validator.ValidationErrors is decomposed field by field; anything
// else (malformed body, type mismatch) becomes a single form-level
// message under the "form" key.
func Validate(err error) Result {
	if err == nil {
		return Result{Valid: true, Errors: map[string]string{}}
	}

	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "The submitted form could not be read."
		return Result{Errors: out}
	}

	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return Result{Errors: out}
}

// message maps a failed validation tag to a user-facing sentence.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL, including the scheme."
	default:
		return "This value is not valid."
	}
}
