package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/go-playground/validator/v10"
)

type ErrValidation struct {
	error
	Fields []string
}

func NewErrValidation(fields []string, messages []string) *ErrValidation {
	return &ErrValidation{
		error:  fmt.Errorf("%s", strings.Join(messages, "; ")),
		Fields: fields,
	}
}

func translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]string, 0, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		messages = append(messages, message(fe))
	}
	return NewErrValidation(fields, messages)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "style":
		return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fe.Value(), strings.Join(toStrings(estimation.Styles()), ", "))
	case "maturity":
		return fmt.Sprintf("%s %q is not one of %s", fe.Field(), fe.Value(), strings.Join(toStrings(estimation.Maturities()), ", "))
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag())
	}
}

func toStrings[T ~string](values []T) []string {
	res := make([]string, 0, len(values))
	for _, v := range values {
		res = append(res, string(v))
	}
	return res
}
