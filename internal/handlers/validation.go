package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// NewValidator returns a validator that reports fields by their JSON names
// and knows the "username" rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return v
}

// validationErrors converts validator output into per-field messages.
func validationErrors(err error) ValidationErrorResponse {
	resp := ValidationErrorResponse{Errors: map[string][]string{}}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		resp.Errors["non_field_errors"] = []string{err.Error()}
		return resp
	}

	for _, fe := range verrs {
		resp.Errors[fe.Field()] = append(resp.Errors[fe.Field()], fieldMessage(fe))
	}
	return resp
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "username":
		return "Enter a valid username. It may contain only letters, digits and @/./+/-/_ characters."
	default:
		return "Invalid value."
	}
}
