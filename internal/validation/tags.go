package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Struct tags registered by RegisterValidators.
const (
	TagEmail      = "account_email"
	TagPassword   = "password"
	TagNickname   = "nickname"
	TagCardNumber = "cardnumber"
)

// RegisterValidators makes the account and card rules available as
// go-playground/validator tags.
func RegisterValidators(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		TagEmail:      IsValidEmail,
		TagPassword:   IsValidPassword,
		TagNickname:   IsValidNickname,
		TagCardNumber: func(s string) bool { return DescribeCard(s).Complete },
	}
	for tag, rule := range rules {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
