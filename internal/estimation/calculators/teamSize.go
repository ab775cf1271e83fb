package calculators

import (
	"fmt"
	"math"

	"github.com/auditscope/scope-planner/internal/estimation"
	"github.com/thoas/go-funk"
)

// Compile-time assertion that TeamSize implements the Calculator interface.
var _ estimation.Calculator = (*TeamSize)(nil)

// TeamSize accounts for the integration and coordination cost of larger teams on the
// coordination-sensitive tracks. A team of one is the identity.
type TeamSize struct {
	step   float64
	cap    float64
	tracks []estimation.TrackKey
}

// TeamSizeOption is a functional option for configuring a TeamSize calculator.
type TeamSizeOption func(*TeamSize)

// WithTeamStep sets the overhead added per engineer beyond the first.
// Negative values are ignored and the default is kept.
func WithTeamStep(step float64) TeamSizeOption {
	return func(t *TeamSize) {
		if step >= 0 {
			t.step = step
		}
	}
}

// WithTeamCap sets the largest factor the team size can produce.
// Values below 1 are ignored and the default is kept.
func WithTeamCap(limit float64) TeamSizeOption {
	return func(t *TeamSize) {
		if limit >= 1 {
			t.cap = limit
		}
	}
}

// WithCoordinationTracks sets the tracks the team size applies to.
func WithCoordinationTracks(tracks ...estimation.TrackKey) TeamSizeOption {
	return func(t *TeamSize) {
		if len(tracks) > 0 {
			t.tracks = tracks
		}
	}
}

// NewTeamSize creates a TeamSize calculator with default settings that can be overridden by options.
func NewTeamSize(opts ...TeamSizeOption) *TeamSize {
	defaults := estimation.DefaultTables().Team
	res := TeamSize{
		step:   defaults.Step,
		cap:    defaults.Cap,
		tracks: defaults.Tracks,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the human-readable name of this calculator.
func (c *TeamSize) Name() string { return "Team Size" }

// Calculate returns min(1 + step*(teamSize-1), cap) for coordination-sensitive tracks, 1 otherwise.
func (c *TeamSize) Calculate(cfg estimation.Configuration, track estimation.Track) (estimation.Adjustment, error) {
	if cfg.TeamSize < 1 {
		return estimation.Adjustment{}, fmt.Errorf("team size must be >= 1")
	}
	if !funk.Contains(c.tracks, track.Key) {
		return estimation.Adjustment{
			Factor: identity,
			Reason: "not coordination sensitive",
		}, nil
	}

	factor := math.Min(1+c.step*float64(cfg.TeamSize-1), c.cap)
	return estimation.Adjustment{
		Factor: factor,
		Reason: fmt.Sprintf("%d engineers %s", cfg.TeamSize, formatFactor(factor)),
	}, nil
}
