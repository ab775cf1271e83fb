package calculators

import (
	"fmt"

	"github.com/auditscope/scope-planner/internal/estimation"
)

// Compile-time assertion that StyleEmphasis implements the Calculator interface.
var _ estimation.Calculator = (*StyleEmphasis)(nil)

// StyleEmphasis weights each track by the focus of the project's design style.
type StyleEmphasis struct {
	profiles map[estimation.Style]estimation.StyleProfile
}

// StyleEmphasisOption is a functional option for configuring a StyleEmphasis calculator.
type StyleEmphasisOption func(*StyleEmphasis)

// WithStyleProfiles replaces the built-in style profiles.
func WithStyleProfiles(profiles map[estimation.Style]estimation.StyleProfile) StyleEmphasisOption {
	return func(s *StyleEmphasis) {
		if len(profiles) > 0 {
			s.profiles = profiles
		}
	}
}

// NewStyleEmphasis creates a StyleEmphasis calculator using the default style profiles
// unless overridden by options.
func NewStyleEmphasis(opts ...StyleEmphasisOption) *StyleEmphasis {
	res := StyleEmphasis{
		profiles: estimation.DefaultTables().Styles,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the human-readable name of this calculator.
func (c *StyleEmphasis) Name() string { return "Style Emphasis" }

// Calculate returns the style multiplier of the track.
func (c *StyleEmphasis) Calculate(cfg estimation.Configuration, track estimation.Track) (estimation.Adjustment, error) {
	profile, ok := c.profiles[cfg.Style]
	if !ok {
		return estimation.Adjustment{}, fmt.Errorf("no profile for style %q", cfg.Style)
	}
	factor := profile.MultiplierFor(track.Key)
	return estimation.Adjustment{
		Factor: factor,
		Reason: fmt.Sprintf("%s weighs %s %s", profile.Name, track.Key, formatFactor(factor)),
	}, nil
}
