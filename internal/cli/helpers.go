package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thoas/go-funk"
)

const (
	StyleKind    = "style"
	TrackKind    = "track"
	MaturityKind = "maturity"
)

var (
	pluralKinds = map[string]string{
		StyleKind:    "styles",
		TrackKind:    "tracks",
		MaturityKind: "maturities",
	}
)

func parseAndValidateKind(arg string) (string, error) {
	kind := singular(strings.ToLower(arg))
	if _, ok := pluralKinds[kind]; !ok {
		return "", fmt.Errorf("invalid resource kind: %s (must be one of %s)", arg, strings.Join(knownKinds(), ", "))
	}
	return kind, nil
}

func singular(kind string) string {
	for singular, plural := range pluralKinds {
		if kind == plural {
			return singular
		}
	}
	return kind
}

func plural(kind string) string {
	return pluralKinds[kind]
}

func knownKinds() []string {
	kinds := funk.Values(pluralKinds).([]string)
	sort.Strings(kinds)
	return kinds
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
