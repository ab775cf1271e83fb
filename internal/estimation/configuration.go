package estimation

import (
	"fmt"
	"strings"
)

// Style is the base design archetype of the audited project.
type Style string

const (
	StyleAztec     Style = "aztec"
	StyleZama      Style = "zama"
	StyleSoundness Style = "soundness"
)

// Styles returns every known style.
func Styles() []Style {
	return []Style{StyleAztec, StyleZama, StyleSoundness}
}

func (s Style) Valid() bool {
	for _, known := range Styles() {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStyle maps a user supplied string to a Style.
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(s)))
	if !style.Valid() {
		return "", NewErrInvalidConfiguration("unknown style %q: must be one of %s", s, joinValues(Styles()))
	}
	return style, nil
}

// Maturity is the lifecycle stage of the audited project.
type Maturity string

const (
	MaturityIdea      Maturity = "idea"
	MaturityPrototype Maturity = "prototype"
	MaturityMainnet   Maturity = "mainnet"
)

// Maturities returns every known maturity, from least to most mature.
func Maturities() []Maturity {
	return []Maturity{MaturityIdea, MaturityPrototype, MaturityMainnet}
}

func (m Maturity) Valid() bool {
	for _, known := range Maturities() {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMaturity maps a user supplied string to a Maturity.
func ParseMaturity(s string) (Maturity, error) {
	maturity := Maturity(strings.ToLower(strings.TrimSpace(s)))
	if !maturity.Valid() {
		return "", NewErrInvalidConfiguration("unknown maturity %q: must be one of %s", s, joinValues(Maturities()))
	}
	return maturity, nil
}

const DefaultTeamSize = 1

// Configuration describes the project being scoped.
type Configuration struct {
	Style         Style    `json:"style" validate:"style"`
	UsesZK        bool     `json:"usesZk"`
	UsesFHE       bool     `json:"usesFhe"`
	HasBridge     bool     `json:"hasBridge"`
	HasGovernance bool     `json:"hasGovernance"`
	MultiChain    bool     `json:"multiChain"`
	TeamSize      int      `json:"teamSize" validate:"gte=1"`
	Maturity      Maturity `json:"maturity" validate:"maturity"`
}

// NewConfiguration returns an aztec prototype configuration with no flags set and a team of one.
func NewConfiguration() Configuration {
	return Configuration{
		Style:    StyleAztec,
		TeamSize: DefaultTeamSize,
		Maturity: MaturityPrototype,
	}
}

// Check verifies the invariants every estimation relies on.
func (c Configuration) Check() error {
	if !c.Style.Valid() {
		return NewErrInvalidConfiguration("unknown style %q: must be one of %s", c.Style, joinValues(Styles()))
	}
	if !c.Maturity.Valid() {
		return NewErrInvalidConfiguration("unknown maturity %q: must be one of %s", c.Maturity, joinValues(Maturities()))
	}
	if c.TeamSize < 1 {
		return NewErrInvalidConfiguration("team size must be >= 1, got %d", c.TeamSize)
	}
	return nil
}

// UsesProofSystems is true when circuits must be reviewed before the implementation.
func (c Configuration) UsesProofSystems() bool {
	return c.UsesZK || c.UsesFHE
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}

func (c Configuration) String() string {
	return fmt.Sprintf("style=%s zk=%t fhe=%t bridge=%t governance=%t multiChain=%t teamSize=%d maturity=%s",
		c.Style, c.UsesZK, c.UsesFHE, c.HasBridge, c.HasGovernance, c.MultiChain, c.TeamSize, c.Maturity)
}
