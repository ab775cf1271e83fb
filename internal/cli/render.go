package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/charmbracelet/lipgloss"
	"sigs.k8s.io/yaml"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

type textStyles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	days    lipgloss.Style
	faint   lipgloss.Style
}

// newTextStyles binds the styles to w, so colors are dropped when w is not a terminal.
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		days:    r.NewStyle().Bold(true),
		faint:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// printStructured writes v as indented JSON or YAML.
func printStructured(w io.Writer, v interface{}, format string) error {
	switch format {
	case jsonFormat:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling to json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case yamlFormat:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling to yaml: %w", err)
		}
		_, err = fmt.Fprint(w, string(data))
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func printPlan(w io.Writer, plan *estimation.Plan, format string, explain bool) error {
	if format == textFormat {
		return printPlanText(w, plan, explain)
	}
	return printStructured(w, plan, format)
}

func printPlanText(w io.Writer, plan *estimation.Plan, explain bool) error {
	s := newTextStyles(w)

	fmt.Fprintln(w, s.title.Render("Web3 Audit Scope Plan"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Style: %s (%s)\n", plan.StyleName, plan.Style)
	fmt.Fprintln(w, s.faint.Render(plan.StyleDescription))
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.heading.Render("Project"))
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "  Uses zk-proofs\t%s\n", yesNo(plan.UsesZK))
	fmt.Fprintf(tw, "  Uses FHE\t%s\n", yesNo(plan.UsesFHE))
	fmt.Fprintf(tw, "  Bridge / cross-chain\t%s\n", yesNo(plan.HasBridge))
	fmt.Fprintf(tw, "  Governance / upgrades\t%s\n", yesNo(plan.HasGovernance))
	fmt.Fprintf(tw, "  Multi-chain\t%s\n", yesNo(plan.MultiChain))
	fmt.Fprintf(tw, "  Team size\t%d\n", plan.TeamSize)
	fmt.Fprintf(tw, "  Maturity\t%s\n", plan.Maturity)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", s.heading.Render("Total estimated effort:"), s.days.Render(fmt.Sprintf("%d person-days", plan.TotalEstimatedDays)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.heading.Render("Tracks"))
	for _, t := range plan.Tracks {
		fmt.Fprintf(w, "  - %s (%s): %s\n", t.Name, t.Key, s.days.Render(fmt.Sprintf("%d days", t.EstimatedDays)))
		fmt.Fprintf(w, "    %s\n", s.faint.Render(t.Description))
		if explain {
			printBreakdown(w, t)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.heading.Render("Suggested order"))
	for i, key := range plan.SuggestedOrder {
		name := string(key)
		if t, ok := plan.Track(key); ok {
			name = t.Name
		}
		fmt.Fprintf(w, "  %d. %s (%s)\n", i+1, name, key)
	}
	return nil
}

func printBreakdown(w io.Writer, t estimation.TrackEstimate) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, f := range t.Breakdown {
		fmt.Fprintf(tw, "      %s\tx%.3f\t%s\n", f.Name, f.Value, f.Reason)
	}
	fmt.Fprintf(tw, "      exact\t%.2f\trounded to %d\n", t.ExactDays, t.EstimatedDays)
	_ = tw.Flush()
}
