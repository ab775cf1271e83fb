package validator

import "github.com/go-playground/validator/v10"

func registerFn(tag string, fn func(fl validator.FieldLevel) bool) func(v *validator.Validate) {
	return func(v *validator.Validate) {
		_ = v.RegisterValidation(tag, fn)
	}
}

// NewConfigurationValidationRules returns the rules backing the `style` and `maturity` tags of estimation.Configuration.
func NewConfigurationValidationRules() []ValidationRule {
	return []ValidationRule{
		{
			Rule: registerFn("style", styleValidator),
		},
		{
			Rule: registerFn("maturity", maturityValidator),
		},
	}
}

// NewConfigurationValidator returns a Validator ready to check estimation.Configuration values.
func NewConfigurationValidator() *Validator {
	v := NewValidator()
	v.Register(NewConfigurationValidationRules()...)
	return v
}
