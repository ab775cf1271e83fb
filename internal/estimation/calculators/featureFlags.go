package calculators

import (
	"fmt"

	"github.com/auditscope/scope-planner/internal/estimation"
)

// Compile-time assertion that FeatureFlags implements the Calculator interface.
var _ estimation.Calculator = (*FeatureFlags)(nil)

// FeatureFlags boosts the tracks burdened by the project's features (zk, FHE, bridge, governance, multi-chain).
type FeatureFlags struct {
	multipliers estimation.FlagMultipliers
}

// FeatureFlagsOption is a functional option for configuring a FeatureFlags calculator.
type FeatureFlagsOption func(*FeatureFlags)

// WithFlagMultipliers replaces the built-in flag multipliers.
func WithFlagMultipliers(m estimation.FlagMultipliers) FeatureFlagsOption {
	return func(f *FeatureFlags) {
		f.multipliers = m
	}
}

// NewFeatureFlags creates a FeatureFlags calculator with the default multipliers.
func NewFeatureFlags(opts ...FeatureFlagsOption) *FeatureFlags {
	res := FeatureFlags{
		multipliers: estimation.DefaultTables().Flags,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the human-readable name of this calculator.
func (c *FeatureFlags) Name() string { return "Feature Flags" }

// Calculate multiplies the boosts of every set flag that affects the track.
func (c *FeatureFlags) Calculate(cfg estimation.Configuration, track estimation.Track) (estimation.Adjustment, error) {
	active := []struct {
		set  bool
		name string
		m    estimation.Multipliers
	}{
		{cfg.UsesZK, "zk-proofs", c.multipliers.ZK},
		{cfg.UsesFHE, "FHE", c.multipliers.FHE},
		{cfg.HasBridge, "bridge", c.multipliers.Bridge},
		{cfg.HasGovernance, "governance", c.multipliers.Governance},
		{cfg.MultiChain, "multi-chain", c.multipliers.MultiChain},
	}

	factor := identity
	reasons := make([]string, 0, len(active))
	for _, flag := range active {
		if !flag.set {
			continue
		}
		f, ok := flag.m[track.Key]
		if !ok {
			continue
		}
		factor *= f
		reasons = append(reasons, fmt.Sprintf("%s %s", flag.name, formatFactor(f)))
	}

	return estimation.Adjustment{
		Factor: factor,
		Reason: joinReasons(reasons, "no feature affects this track"),
	}, nil
}
