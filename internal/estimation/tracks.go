package estimation

// TrackKey is the stable identifier of an audit track.
type TrackKey string

const (
	TrackProtocol       TrackKey = "protocol"
	TrackCircuits       TrackKey = "circuits"
	TrackImplementation TrackKey = "implementation"
	TrackInfra          TrackKey = "infra"
	TrackGovernance     TrackKey = "governance"
)

// Track is one of the fixed audit workstreams.
type Track struct {
	Key         TrackKey `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BaseDays    float64  `json:"baseDays"`
}

var trackCatalog = []Track{
	{
		Key:         TrackProtocol,
		Name:        "Protocol & Soundness Review",
		Description: "Core protocol logic, liveness & safety properties, invariants.",
	},
	{
		Key:         TrackCircuits,
		Name:        "Circuits / Crypto Review",
		Description: "ZK/FHE circuits, gadgets, and cryptographic assumptions.",
	},
	{
		Key:         TrackImplementation,
		Name:        "Implementation Review",
		Description: "Smart contracts, on-chain logic, and critical off-chain components.",
	},
	{
		Key:         TrackInfra,
		Name:        "Infrastructure & DevOps Review",
		Description: "RPC, sequencers, key management, monitoring, and ops runbooks.",
	},
	{
		Key:         TrackGovernance,
		Name:        "Governance & Upgradeability Review",
		Description: "Admin keys, upgrade paths, governance contracts and voting logic.",
	},
}

// TrackKeys returns the keys of all tracks in their fixed order.
// The same order is the tie-break precedence used by SuggestOrder.
func TrackKeys() []TrackKey {
	keys := make([]TrackKey, 0, len(trackCatalog))
	for _, t := range trackCatalog {
		keys = append(keys, t.Key)
	}
	return keys
}

// Valid reports whether k names one of the fixed tracks.
func (k TrackKey) Valid() bool {
	return precedence(k) < len(trackCatalog)
}

func precedence(k TrackKey) int {
	for i, t := range trackCatalog {
		if t.Key == k {
			return i
		}
	}
	return len(trackCatalog)
}
