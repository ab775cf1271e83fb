package cli

import (
	"errors"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/spf13/cobra"
)

// Exit codes of the planner CLI
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitError indicates a general error condition
	ExitError = 1
	// ExitInvalidInput indicates bad flags or an invalid project configuration
	ExitInvalidInput = 2
)

// ErrUsage marks errors caused by invalid command usage.
type ErrUsage struct {
	error
}

// FlagErrorFunc tags flag parsing errors as usage errors.
func FlagErrorFunc(_ *cobra.Command, err error) error {
	return &ErrUsage{err}
}

// UsageArgs tags positional argument errors of validate as usage errors.
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &ErrUsage{err}
		}
		return nil
	}
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *ErrUsage
	if errors.As(err, &usage) || estimation.IsInvalidConfiguration(err) {
		return ExitInvalidInput
	}
	return ExitError
}
