package estimation

// Calculator encapsulates one multiplicative adjustment of a track estimate (e.g. "style emphasis", "maturity").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used to label the factor in a breakdown.
	Name() string
	// Calculate returns the factor this calculator applies to the given track under cfg.
	Calculate(cfg Configuration, track Track) (Adjustment, error)
}

// Adjustment is the result of a Calculator calculation
type Adjustment struct {
	Factor float64
	Reason string
}

// Factor is one entry of a track estimate breakdown.
type Factor struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Reason string  `json:"reason"`
}

// TrackEstimate is the estimated effort of a single audit track.
// ExactDays and Breakdown are explanation data and are not part of the serialized plan.
type TrackEstimate struct {
	Key           TrackKey `json:"key"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	EstimatedDays int      `json:"estimatedDays"`

	ExactDays float64  `json:"-"`
	Breakdown []Factor `json:"-"`
}

// Plan is the complete estimation result for one Configuration.
type Plan struct {
	Style            Style    `json:"style"`
	StyleName        string   `json:"styleName"`
	StyleDescription string   `json:"styleDescription"`
	UsesZK           bool     `json:"usesZk"`
	UsesFHE          bool     `json:"usesFhe"`
	HasBridge        bool     `json:"hasBridge"`
	HasGovernance    bool     `json:"hasGovernance"`
	MultiChain       bool     `json:"multiChain"`
	TeamSize         int      `json:"teamSize"`
	Maturity         Maturity `json:"maturity"`

	Tracks             []TrackEstimate `json:"tracks"`
	TotalEstimatedDays int             `json:"totalEstimatedDays"`
	SuggestedOrder     []TrackKey      `json:"suggestedOrder"`
}

// Track returns the estimate for key, if present.
func (p *Plan) Track(key TrackKey) (TrackEstimate, bool) {
	for _, t := range p.Tracks {
		if t.Key == key {
			return t, true
		}
	}
	return TrackEstimate{}, false
}
