package estimation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when a Configuration cannot be estimated.
type ErrInvalidConfiguration struct {
	error
}

func NewErrInvalidConfiguration(format string, args ...any) *ErrInvalidConfiguration {
	return &ErrInvalidConfiguration{fmt.Errorf(format, args...)}
}

// IsInvalidConfiguration reports whether err, or any error it wraps, is an ErrInvalidConfiguration.
func IsInvalidConfiguration(err error) bool {
	var target *ErrInvalidConfiguration
	return errors.As(err, &target)
}

// ErrInvalidTables is returned when tuned tables would break the estimation guarantees.
type ErrInvalidTables struct {
	error
}

func NewErrInvalidTables(format string, args ...any) *ErrInvalidTables {
	return &ErrInvalidTables{fmt.Errorf(format, args...)}
}
