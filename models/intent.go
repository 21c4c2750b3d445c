package models

// IntentDefinition describes one discrete user goal: an identifying tag,
// example phrasings used as training data, and template responses.
type IntentDefinition struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// IntentFile is the on-disk shape of intents.json.
type IntentFile struct {
	Intents []IntentDefinition `json:"intents"`
}

// Entity kinds produced by the extractor.
const (
	EntityFlightNumbers = "flight_numbers"
	EntityAirportCodes  = "airport_codes"
	EntityBookingRefs   = "booking_refs"
	EntityCities        = "cities"
)

// EntityBag maps an entity kind to the values extracted from one utterance.
// A kind with zero matches is absent, never an empty slice.
type EntityBag map[string][]string

// First returns the first value of a kind, or "" when the kind is absent.
func (b EntityBag) First(kind string) string {
	if vals := b[kind]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Clone returns a deep copy so stored history cannot alias caller data.
func (b EntityBag) Clone() EntityBag {
	if b == nil {
		return nil
	}
	out := make(EntityBag, len(b))
	for kind, vals := range b {
		out[kind] = append([]string(nil), vals...)
	}
	return out
}

// ClassificationResult is the classifier's verdict for one utterance.
// Intent is empty when no class clears the confidence threshold; the
// probability is still carried for downstream comparison.
type ClassificationResult struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// ProcessResult is the structured outcome of one engine call.
type ProcessResult struct {
	Response   string    `json:"response"`
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	Entities   EntityBag `json:"entities,omitempty"`
}
