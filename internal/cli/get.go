package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
)

var (
	legalOutputTypes = []string{jsonFormat, yamlFormat}
)

type GetOptions struct {
	GlobalOptions

	Output string

	out io.Writer
}

type styleView struct {
	Key         estimation.Style       `json:"key"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Multipliers estimation.Multipliers `json:"multipliers"`
}

type maturityView struct {
	Key    estimation.Maturity `json:"key"`
	Factor float64             `json:"factor"`
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:       "get (styles | tracks | maturities)",
		Short:     "Display the styles, tracks or maturity levels known to the planner.",
		Args:      UsageArgs(cobra.ExactArgs(1)),
		ValidArgs: knownKinds(),
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s). Default: table.", strings.Join(legalOutputTypes, ", ")))
}

func (o *GetOptions) Complete(cmd *cobra.Command, args []string) error {
	if err := o.GlobalOptions.Complete(cmd, args); err != nil {
		return err
	}
	o.out = cmd.OutOrStdout()
	return nil
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	if _, err := parseAndValidateKind(args[0]); err != nil {
		return &ErrUsage{err}
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return &ErrUsage{fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))}
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	kind, err := parseAndValidateKind(args[0])
	if err != nil {
		return err
	}

	estimator, err := o.Estimator()
	if err != nil {
		return fmt.Errorf("listing %s: %w", plural(kind), err)
	}
	tables := estimator.Tables()

	var response interface{}
	switch kind {
	case StyleKind:
		response = listStyles(tables)
	case TrackKind:
		response = tables.Tracks()
	case MaturityKind:
		response = listMaturities(tables)
	default:
		return fmt.Errorf("listing %s: unsupported resource kind", plural(kind))
	}

	if len(o.Output) > 0 {
		return printStructured(o.out, response, o.Output)
	}
	return printTable(o.out, response)
}

func listStyles(tables *estimation.Tables) []styleView {
	views := []styleView{}
	for _, style := range estimation.Styles() {
		profile, _ := tables.Profile(style)
		views = append(views, styleView{
			Key:         style,
			Name:        profile.Name,
			Description: profile.Description,
			Multipliers: profile.Multipliers,
		})
	}
	return views
}

func listMaturities(tables *estimation.Tables) []maturityView {
	views := []maturityView{}
	for _, m := range estimation.Maturities() {
		views = append(views, maturityView{Key: m, Factor: tables.Maturity[m]})
	}
	return views
}

func printTable(out io.Writer, response interface{}) error {
	w := tabwriter.NewWriter(out, 0, 8, 1, '\t', 0)
	switch v := response.(type) {
	case []styleView:
		printStylesTable(w, v...)
	case []estimation.Track:
		printTracksTable(w, v...)
	case []maturityView:
		printMaturitiesTable(w, v...)
	default:
		return fmt.Errorf("unknown resource type %T", response)
	}
	return w.Flush()
}

func printStylesTable(w *tabwriter.Writer, styles ...styleView) {
	header := []string{"KEY", "NAME"}
	for _, key := range estimation.TrackKeys() {
		header = append(header, strings.ToUpper(string(key)))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, s := range styles {
		row := []string{string(s.Key), s.Name}
		for _, key := range estimation.TrackKeys() {
			row = append(row, fmt.Sprintf("%.2f", s.Multipliers.For(key)))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

func printTracksTable(w *tabwriter.Writer, tracks ...estimation.Track) {
	fmt.Fprintln(w, "KEY\tNAME\tBASE DAYS")
	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%g\n", t.Key, t.Name, t.BaseDays)
	}
}

func printMaturitiesTable(w *tabwriter.Writer, maturities ...maturityView) {
	fmt.Fprintln(w, "KEY\tFACTOR")
	for _, m := range maturities {
		fmt.Fprintf(w, "%s\t%.2f\n", m.Key, m.Factor)
	}
}
