package estimation

import "sort"

// SuggestOrder returns the recommended audit sequence of the estimated tracks.
//
// Tracks are ranked by descending estimate, ties broken by the fixed track order. The
// sequence is then emitted greedily, always taking the best ranked track whose
// prerequisites are already scheduled: protocol comes before implementation, and so do
// circuits when the project uses zk-proofs or FHE.
func SuggestOrder(estimates []TrackEstimate, cfg Configuration) []TrackKey {
	ranked := make([]TrackEstimate, len(estimates))
	copy(ranked, estimates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].EstimatedDays != ranked[j].EstimatedDays {
			return ranked[i].EstimatedDays > ranked[j].EstimatedDays
		}
		return precedence(ranked[i].Key) < precedence(ranked[j].Key)
	})

	present := make(map[TrackKey]bool, len(ranked))
	for _, est := range ranked {
		present[est.Key] = true
	}
	prereqs := prerequisites(cfg)
	ready := func(key TrackKey, scheduled map[TrackKey]bool) bool {
		for _, dep := range prereqs[key] {
			if present[dep] && !scheduled[dep] {
				return false
			}
		}
		return true
	}

	order := make([]TrackKey, 0, len(ranked))
	scheduled := make(map[TrackKey]bool, len(ranked))
	for len(order) < len(present) {
		next := TrackKey("")
		for _, est := range ranked {
			if !scheduled[est.Key] && ready(est.Key, scheduled) {
				next = est.Key
				break
			}
		}
		if next == "" {
			// unreachable with an acyclic prerequisite graph
			break
		}
		order = append(order, next)
		scheduled[next] = true
	}
	return order
}

func prerequisites(cfg Configuration) map[TrackKey][]TrackKey {
	deps := map[TrackKey][]TrackKey{
		TrackImplementation: {TrackProtocol},
	}
	if cfg.UsesProofSystems() {
		deps[TrackImplementation] = append(deps[TrackImplementation], TrackCircuits)
	}
	return deps
}
