package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/auditscope/scope-planner/internal/config"
	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

var (
	legalPlanOutputTypes = []string{textFormat, jsonFormat, yamlFormat}
)

type EstimateOptions struct {
	GlobalOptions

	Style         string
	UsesZK        bool
	UsesFHE       bool
	HasBridge     bool
	HasGovernance bool
	MultiChain    bool
	TeamSize      int
	Maturity      string

	Output  string
	JSON    bool
	Explain bool

	out io.Writer
}

func DefaultEstimateOptions() *EstimateOptions {
	o := &EstimateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Style:         string(estimation.StyleAztec),
		Maturity:      string(estimation.MaturityPrototype),
		TeamSize:      estimation.DefaultTeamSize,
	}
	if cfg, err := config.New(); err == nil {
		o.Style = cfg.Estimate.Style
		o.Maturity = cfg.Estimate.Maturity
		o.TeamSize = cfg.Estimate.TeamSize
		o.Output = cfg.Service.Output
	}
	return o
}

func NewCmdEstimate() *cobra.Command {
	o := DefaultEstimateOptions()
	cmd := &cobra.Command{
		Use:   "estimate [flags]",
		Short: "Estimate audit tracks and person-days for a project.",
		Example: "  scope-planner estimate --style zama --fhe --multi-chain --team-size 3 --maturity mainnet\n" +
			"  scope-planner estimate --style soundness --governance -o yaml",
		Args: UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *EstimateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.Style, "style", o.Style, fmt.Sprintf("Base project style. One of: (%s).", strings.Join(styleNames(), ", ")))
	fs.BoolVar(&o.UsesZK, "zk", o.UsesZK, "Project uses zk-proofs.")
	fs.BoolVar(&o.UsesFHE, "fhe", o.UsesFHE, "Project uses FHE.")
	fs.BoolVar(&o.HasBridge, "bridge", o.HasBridge, "Project has a bridge or cross-chain messaging.")
	fs.BoolVar(&o.HasGovernance, "governance", o.HasGovernance, "Project has on-chain governance or an upgrade mechanism.")
	fs.BoolVar(&o.MultiChain, "multi-chain", o.MultiChain, "Project is deployed on multiple chains.")
	fs.IntVar(&o.TeamSize, "team-size", o.TeamSize, "Number of protocol team members.")
	fs.StringVar(&o.Maturity, "maturity", o.Maturity, fmt.Sprintf("Project maturity. One of: (%s).", strings.Join(maturityNames(), ", ")))
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalPlanOutputTypes, ", ")))
	fs.BoolVar(&o.JSON, "json", o.JSON, "Output the plan as JSON. Same as --output json.")
	fs.BoolVar(&o.Explain, "explain", o.Explain, "Show the factors behind every track estimate.")
}

func (o *EstimateOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	if o.JSON {
		if cmd.Flags().Changed("output") && o.Output != jsonFormat {
			return &ErrUsage{fmt.Errorf("--json conflicts with --output %s", o.Output)}
		}
		o.Output = jsonFormat
	}
	if o.Output == "" {
		o.Output = textFormat
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *EstimateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if !funk.Contains(legalPlanOutputTypes, o.Output) {
		return &ErrUsage{fmt.Errorf("output format must be one of %s", strings.Join(legalPlanOutputTypes, ", "))}
	}

	_, err := o.Configuration()
	return err
}

// Configuration normalizes the flag values into an estimation.Configuration.
func (o *EstimateOptions) Configuration() (estimation.Configuration, error) {
	style, err := estimation.ParseStyle(o.Style)
	if err != nil {
		return estimation.Configuration{}, err
	}
	maturity, err := estimation.ParseMaturity(o.Maturity)
	if err != nil {
		return estimation.Configuration{}, err
	}
	return estimation.Configuration{
		Style:         style,
		UsesZK:        o.UsesZK,
		UsesFHE:       o.UsesFHE,
		HasBridge:     o.HasBridge,
		HasGovernance: o.HasGovernance,
		MultiChain:    o.MultiChain,
		TeamSize:      o.TeamSize,
		Maturity:      maturity,
	}, nil
}

func (o *EstimateOptions) Run(ctx context.Context, args []string) error {
	cfg, err := o.Configuration()
	if err != nil {
		return err
	}

	estimator, err := o.Estimator()
	if err != nil {
		return err
	}

	plan, err := estimator.ComputePlan(cfg)
	if err != nil {
		return err
	}
	zap.S().Debugf("estimated %d person-days for %s", plan.TotalEstimatedDays, cfg)

	return printPlan(o.out, plan, o.Output, o.Explain)
}

func styleNames() []string {
	names := []string{}
	for _, s := range estimation.Styles() {
		names = append(names, string(s))
	}
	return names
}

func maturityNames() []string {
	names := []string{}
	for _, m := range estimation.Maturities() {
		names = append(names, string(m))
	}
	return names
}
