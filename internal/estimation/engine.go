package estimation

import "fmt"

// Engine orchestrates Calculator objects and composes their factors per track
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to participate in the estimation.
// Calculators are executed in the order they are registered; since factors are multiplied
// the order only affects the breakdown, never the estimate.
// Register panics if a calculator with the same Name() is already registered,
// as duplicate names would make the breakdown ambiguous.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Run estimates every track under cfg.
// The configuration is checked first and any calculator error aborts the run, so either
// every track is estimated or an ErrInvalidConfiguration is returned.
func (e *Engine) Run(cfg Configuration, tracks []Track) ([]TrackEstimate, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	estimates := make([]TrackEstimate, 0, len(tracks))
	for _, track := range tracks {
		days := track.BaseDays
		breakdown := make([]Factor, 0, len(e.calculators))
		for _, calc := range e.calculators {
			adj, err := calc.Calculate(cfg, track)
			if err != nil {
				return nil, NewErrInvalidConfiguration("%s: %v", calc.Name(), err)
			}
			days *= adj.Factor
			breakdown = append(breakdown, Factor{Name: calc.Name(), Value: adj.Factor, Reason: adj.Reason})
		}
		estimates = append(estimates, TrackEstimate{
			Key:           track.Key,
			Name:          track.Name,
			Description:   track.Description,
			EstimatedDays: RoundDays(days),
			ExactDays:     days,
			Breakdown:     breakdown,
		})
	}
	return estimates, nil
}

// Total sums the rounded estimates.
func Total(estimates []TrackEstimate) int {
	total := 0
	for _, est := range estimates {
		total += est.EstimatedDays
	}
	return total
}
