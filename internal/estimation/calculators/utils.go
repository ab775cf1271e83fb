package calculators

import (
	"fmt"
	"strings"
)

const identity = 1.0

func formatFactor(f float64) string {
	return fmt.Sprintf("x%.2f", f)
}

func joinReasons(reasons []string, fallback string) string {
	if len(reasons) == 0 {
		return fallback
	}
	return strings.Join(reasons, ", ")
}
