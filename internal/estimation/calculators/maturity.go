package calculators

import (
	"fmt"

	"github.com/auditscope/scope-planner/internal/estimation"
)

// Compile-time assertion that Maturity implements the Calculator interface.
var _ estimation.Calculator = (*Maturity)(nil)

// Maturity scales every track by the review depth the project's stage calls for:
// early ideas need less, mainnet deployments need more.
type Maturity struct {
	factors map[estimation.Maturity]float64
}

// MaturityOption is a functional option for configuring a Maturity calculator.
type MaturityOption func(*Maturity)

// WithMaturityFactors replaces the built-in maturity factors.
func WithMaturityFactors(factors map[estimation.Maturity]float64) MaturityOption {
	return func(m *Maturity) {
		if len(factors) > 0 {
			m.factors = factors
		}
	}
}

// NewMaturity creates a Maturity calculator with the default factors.
func NewMaturity(opts ...MaturityOption) *Maturity {
	res := Maturity{
		factors: estimation.DefaultTables().Maturity,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Maturity) Name() string { return "Maturity" }

// Calculate returns the factor of the configured maturity.
func (c *Maturity) Calculate(cfg estimation.Configuration, _ estimation.Track) (estimation.Adjustment, error) {
	factor, ok := c.factors[cfg.Maturity]
	if !ok {
		return estimation.Adjustment{}, fmt.Errorf("no factor for maturity %q", cfg.Maturity)
	}
	return estimation.Adjustment{
		Factor: factor,
		Reason: fmt.Sprintf("%s stage %s", cfg.Maturity, formatFactor(factor)),
	}, nil
}
