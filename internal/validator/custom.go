package validator

import (
	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/go-playground/validator/v10"
)

func styleValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(estimation.Style)
	if !ok {
		return false
	}
	return val.Valid()
}

func maturityValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(estimation.Maturity)
	if !ok {
		return false
	}
	return val.Valid()
}
