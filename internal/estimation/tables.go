package estimation

import (
	"fmt"
	"os"
	"sort"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Multipliers maps tracks to a multiplicative factor. Tracks without an entry are left unchanged.
type Multipliers map[TrackKey]float64

// For returns the factor for key, or 1 when the key has no entry.
func (m Multipliers) For(key TrackKey) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return 1.0
}

func (m Multipliers) clone() Multipliers {
	if m == nil {
		return nil
	}
	res := make(Multipliers, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

func (m Multipliers) merge(overlay Multipliers) Multipliers {
	res := m.clone()
	if res == nil {
		res = Multipliers{}
	}
	for k, v := range overlay {
		res[k] = v
	}
	return res
}

// StyleProfile is the display data and per-track emphasis of a Style.
type StyleProfile struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Multipliers Multipliers `json:"multipliers"`
}

// MultiplierFor returns the emphasis this style puts on the given track.
func (p StyleProfile) MultiplierFor(key TrackKey) float64 {
	return p.Multipliers.For(key)
}

// FlagMultipliers holds the boost applied by each project flag when it is set.
type FlagMultipliers struct {
	ZK         Multipliers `json:"zk"`
	FHE        Multipliers `json:"fhe"`
	Bridge     Multipliers `json:"bridge"`
	Governance Multipliers `json:"governance"`
	MultiChain Multipliers `json:"multiChain"`
}

// TeamScaling describes the coordination overhead of larger teams:
// min(1 + Step*(teamSize-1), Cap), applied to Tracks only.
type TeamScaling struct {
	Step   float64    `json:"step"`
	Cap    float64    `json:"cap"`
	Tracks []TrackKey `json:"tracks"`
}

// Tables holds every tunable constant of the estimation.
type Tables struct {
	BaseDays Multipliers            `json:"baseDays"`
	Styles   map[Style]StyleProfile `json:"styles"`
	Flags    FlagMultipliers        `json:"flags"`
	Maturity map[Maturity]float64   `json:"maturity"`
	Team     TeamScaling            `json:"team"`
}

const (
	DefaultTeamStep = 0.03
	DefaultTeamCap  = 1.6

	// MaxBaseDays and MaxMultiplier bound tuned constants so that the product of every
	// factor stays far below the int range of a rounded estimate.
	MaxBaseDays   = 1e4
	MaxMultiplier = 100
)

// flagTracks lists the only tracks each flag may boost.
var flagTracks = map[string][]TrackKey{
	"zk":         {TrackCircuits, TrackProtocol},
	"fhe":        {TrackCircuits, TrackInfra},
	"bridge":     {TrackProtocol, TrackImplementation},
	"governance": {TrackGovernance, TrackProtocol},
	"multiChain": {TrackInfra, TrackImplementation, TrackGovernance},
}

// DefaultTables returns a fresh copy of the built-in constants.
// The numbers are illustrative and not a replacement for professional audit scoping.
func DefaultTables() *Tables {
	return &Tables{
		BaseDays: Multipliers{
			TrackProtocol:       12,
			TrackCircuits:       10,
			TrackImplementation: 10,
			TrackInfra:          6,
			TrackGovernance:     4,
		},
		Styles: map[Style]StyleProfile{
			StyleAztec: {
				Name:        "Aztec-style privacy rollup",
				Description: "Privacy-first zk rollup with encrypted state and complex circuits.",
				Multipliers: Multipliers{
					TrackProtocol:       1.25,
					TrackCircuits:       1.5,
					TrackImplementation: 1.15,
					TrackInfra:          1.1,
					TrackGovernance:     1.0,
				},
			},
			StyleZama: {
				Name:        "Zama-style FHE compute stack",
				Description: "FHE-heavy stack where on-chain code interacts with encrypted compute.",
				Multipliers: Multipliers{
					TrackProtocol:       1.1,
					TrackCircuits:       1.6,
					TrackImplementation: 1.05,
					TrackInfra:          1.5,
					TrackGovernance:     1.0,
				},
			},
			StyleSoundness: {
				Name:        "Soundness-first research lab",
				Description: "Specification-driven protocols with an emphasis on formal soundness.",
				Multipliers: Multipliers{
					TrackProtocol:       1.4,
					TrackCircuits:       1.2,
					TrackImplementation: 1.1,
					TrackInfra:          1.0,
					TrackGovernance:     1.3,
				},
			},
		},
		Flags: FlagMultipliers{
			ZK:         Multipliers{TrackCircuits: 1.25, TrackProtocol: 1.1},
			FHE:        Multipliers{TrackCircuits: 1.35, TrackInfra: 1.4},
			Bridge:     Multipliers{TrackProtocol: 1.2, TrackImplementation: 1.15},
			Governance: Multipliers{TrackGovernance: 1.5, TrackProtocol: 1.05},
			MultiChain: Multipliers{TrackInfra: 1.25, TrackImplementation: 1.1, TrackGovernance: 1.15},
		},
		Maturity: map[Maturity]float64{
			MaturityIdea:      0.7,
			MaturityPrototype: 1.0,
			MaturityMainnet:   1.25,
		},
		Team: TeamScaling{
			Step:   DefaultTeamStep,
			Cap:    DefaultTeamCap,
			Tracks: []TrackKey{TrackInfra, TrackImplementation},
		},
	}
}

// Tracks returns the fixed tracks with the base days of these tables.
func (t *Tables) Tracks() []Track {
	tracks := make([]Track, 0, len(trackCatalog))
	for _, track := range trackCatalog {
		track.BaseDays = t.BaseDays.For(track.Key)
		tracks = append(tracks, track)
	}
	return tracks
}

// Profile returns the profile of the given style.
func (t *Tables) Profile(style Style) (StyleProfile, bool) {
	p, ok := t.Styles[style]
	return p, ok
}

// Clone returns a deep copy of t.
func (t *Tables) Clone() *Tables {
	res := &Tables{
		BaseDays: t.BaseDays.clone(),
		Styles:   make(map[Style]StyleProfile, len(t.Styles)),
		Flags: FlagMultipliers{
			ZK:         t.Flags.ZK.clone(),
			FHE:        t.Flags.FHE.clone(),
			Bridge:     t.Flags.Bridge.clone(),
			Governance: t.Flags.Governance.clone(),
			MultiChain: t.Flags.MultiChain.clone(),
		},
		Maturity: make(map[Maturity]float64, len(t.Maturity)),
		Team: TeamScaling{
			Step:   t.Team.Step,
			Cap:    t.Team.Cap,
			Tracks: append([]TrackKey(nil), t.Team.Tracks...),
		},
	}
	for k, v := range t.Styles {
		v.Multipliers = v.Multipliers.clone()
		res.Styles[k] = v
	}
	for k, v := range t.Maturity {
		res.Maturity[k] = v
	}
	return res
}

// Validate checks that the tables keep the estimation guarantees: positive estimates,
// boost-only flags confined to their tracks, strictly ordered maturity factors with
// prototype as identity, and a team scaling that never decreases an estimate.
func (t *Tables) Validate() error {
	for _, key := range TrackKeys() {
		if v, ok := t.BaseDays[key]; !ok || !within(v, 0, MaxBaseDays) {
			return NewErrInvalidTables("base days of track %q must be > 0 and <= %g", key, float64(MaxBaseDays))
		}
	}
	if err := checkKeys("baseDays", t.BaseDays, nil); err != nil {
		return err
	}

	for style := range t.Styles {
		if !style.Valid() {
			return NewErrInvalidTables("unknown style %q", style)
		}
	}
	for _, style := range Styles() {
		profile, ok := t.Styles[style]
		if !ok {
			return NewErrInvalidTables("missing profile for style %q", style)
		}
		if profile.Name == "" {
			return NewErrInvalidTables("style %q has no name", style)
		}
		if err := checkKeys(fmt.Sprintf("styles.%s", style), profile.Multipliers, nil); err != nil {
			return err
		}
		for key, v := range profile.Multipliers {
			if !within(v, 0, MaxMultiplier) {
				return NewErrInvalidTables("style %q multiplier for %q must be > 0 and <= %g", style, key, float64(MaxMultiplier))
			}
		}
	}

	for _, flag := range []struct {
		name string
		m    Multipliers
	}{
		{"zk", t.Flags.ZK},
		{"fhe", t.Flags.FHE},
		{"bridge", t.Flags.Bridge},
		{"governance", t.Flags.Governance},
		{"multiChain", t.Flags.MultiChain},
	} {
		if err := checkKeys("flags."+flag.name, flag.m, flagTracks[flag.name]); err != nil {
			return err
		}
		for key, v := range flag.m {
			if !(v >= 1 && v <= MaxMultiplier) {
				return NewErrInvalidTables("flag %q multiplier for %q must be >= 1 and <= %g", flag.name, key, float64(MaxMultiplier))
			}
		}
	}
	if t.Flags.FHE.For(TrackCircuits) <= t.Flags.ZK.For(TrackCircuits) {
		return NewErrInvalidTables("fhe circuits multiplier must be greater than the zk one")
	}

	for m := range t.Maturity {
		if !m.Valid() {
			return NewErrInvalidTables("unknown maturity %q", m)
		}
	}
	for _, m := range Maturities() {
		if _, ok := t.Maturity[m]; !ok {
			return NewErrInvalidTables("missing factor for maturity %q", m)
		}
	}
	idea, prototype, mainnet := t.Maturity[MaturityIdea], t.Maturity[MaturityPrototype], t.Maturity[MaturityMainnet]
	if prototype != 1 {
		return NewErrInvalidTables("prototype maturity factor must be 1, got %g", prototype)
	}
	if !within(idea, 0, prototype) || idea == prototype || !within(mainnet, prototype, MaxMultiplier) {
		return NewErrInvalidTables("maturity factors must satisfy 0 < idea < prototype < mainnet <= %g, got %g, %g, %g", float64(MaxMultiplier), idea, prototype, mainnet)
	}

	if !(t.Team.Step >= 0 && t.Team.Step <= MaxMultiplier) {
		return NewErrInvalidTables("team step must be >= 0 and <= %g, got %g", float64(MaxMultiplier), t.Team.Step)
	}
	if !(t.Team.Cap >= 1 && t.Team.Cap <= MaxMultiplier) {
		return NewErrInvalidTables("team cap must be >= 1 and <= %g, got %g", float64(MaxMultiplier), t.Team.Cap)
	}
	covered := map[TrackKey]bool{}
	for _, key := range t.Team.Tracks {
		if !key.Valid() {
			return NewErrInvalidTables("team: unknown track %q", key)
		}
		covered[key] = true
	}
	if !covered[TrackInfra] || !covered[TrackImplementation] {
		return NewErrInvalidTables("team scaling must cover at least %q and %q", TrackInfra, TrackImplementation)
	}
	return nil
}

// within reports lo < v <= hi. NaN is never within.
func within(v, lo, hi float64) bool {
	return v > lo && v <= hi
}

// checkKeys rejects unknown tracks, and tracks outside allowed when allowed is not nil.
func checkKeys(field string, m Multipliers, allowed []TrackKey) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := TrackKey(k)
		if !key.Valid() {
			return NewErrInvalidTables("%s: unknown track %q", field, key)
		}
		if allowed != nil && !containsTrack(allowed, key) {
			return NewErrInvalidTables("%s: track %q cannot be boosted by this flag", field, key)
		}
	}
	return nil
}

func containsTrack(tracks []TrackKey, key TrackKey) bool {
	for _, t := range tracks {
		if t == key {
			return true
		}
	}
	return false
}

// tuning is the on-disk overlay merged over the default tables.
type tuning struct {
	BaseDays Multipliers            `json:"baseDays,omitempty"`
	Styles   map[Style]StyleProfile `json:"styles,omitempty"`
	Flags    FlagMultipliers        `json:"flags,omitempty"`
	Maturity map[Maturity]float64   `json:"maturity,omitempty"`
	Team     struct {
		Step   *float64   `json:"step,omitempty"`
		Cap    *float64   `json:"cap,omitempty"`
		Tracks []TrackKey `json:"tracks,omitempty"`
	} `json:"team,omitempty"`
}

// ParseTables merges a YAML or JSON tuning document over the default tables and validates the result.
// Unknown fields are rejected.
func ParseTables(data []byte) (*Tables, error) {
	var overlay tuning
	if err := yaml.UnmarshalStrict(data, &overlay); err != nil {
		return nil, errors.Wrap(err, "failed to parse tuning")
	}

	t := DefaultTables()
	t.BaseDays = t.BaseDays.merge(overlay.BaseDays)
	for style, p := range overlay.Styles {
		current := t.Styles[style]
		if p.Name != "" {
			current.Name = p.Name
		}
		if p.Description != "" {
			current.Description = p.Description
		}
		current.Multipliers = current.Multipliers.merge(p.Multipliers)
		t.Styles[style] = current
	}
	t.Flags.ZK = t.Flags.ZK.merge(overlay.Flags.ZK)
	t.Flags.FHE = t.Flags.FHE.merge(overlay.Flags.FHE)
	t.Flags.Bridge = t.Flags.Bridge.merge(overlay.Flags.Bridge)
	t.Flags.Governance = t.Flags.Governance.merge(overlay.Flags.Governance)
	t.Flags.MultiChain = t.Flags.MultiChain.merge(overlay.Flags.MultiChain)
	for m, v := range overlay.Maturity {
		t.Maturity[m] = v
	}
	if overlay.Team.Step != nil {
		t.Team.Step = *overlay.Team.Step
	}
	if overlay.Team.Cap != nil {
		t.Team.Cap = *overlay.Team.Cap
	}
	if len(overlay.Team.Tracks) > 0 {
		t.Team.Tracks = overlay.Team.Tracks
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid tuning")
	}
	return t, nil
}

// LoadTables reads a tuning file. An empty path yields the default tables.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tuning file %s", path)
	}
	t, err := ParseTables(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "tuning file %s", path)
	}
	return t, nil
}
