package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/clonecoding/storefront/internal/validation"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names and knows the storefront
// tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validation.RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

// decodeBody reads a JSON body into dst and validates it. On failure it has
// already written the 400 response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		invalidBody(w, r, err, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			invalidBody(w, r, err, err.Error())
			return false
		}
		messages := make([]string, len(fieldErrs))
		for i, fe := range fieldErrs {
			messages[i] = fieldMessage(fe)
		}
		writeError(w, r, http.StatusBadRequest, err, CodeInvalidBody, strings.Join(messages, "; "), fieldErrs[0].Field())
		return false
	}
	return true
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case validation.TagNickname:
		return field + " must be 2-10 Hangul or Latin letters and digits"
	case validation.TagPassword:
		return field + " must be 8-16 characters with a letter, a digit and a symbol"
	case validation.TagEmail:
		return field + " must be a valid email address"
	case validation.TagCardNumber:
		return field + " must be a complete card number"
	default:
		return field + " is invalid"
	}
}
