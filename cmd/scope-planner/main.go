package main

import (
	"os"

	"github.com/auditscope/scope-planner/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	command := NewPlannerCommand()
	if err := command.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}

func NewPlannerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scope-planner [flags] [options]",
		Short: "scope-planner estimates audit tracks and effort for Web3 projects.",
		Long: "scope-planner splits the security review of a Web3 project into audit tracks,\n" +
			"estimates the person-days of each track and suggests in which order to run them.\n" +
			"The figures are heuristics and not a replacement for professional scoping.",
		Args: cli.UsageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(cli.ExitInvalidInput)
		},
	}
	cmd.SetFlagErrorFunc(cli.FlagErrorFunc)
	cmd.AddCommand(cli.NewCmdEstimate())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
