package nlp

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// DefaultFuzzyThreshold is the minimum partial-ratio score (0-100) a
// pattern must reach to be considered a match.
const DefaultFuzzyThreshold = 70

// FuzzyMatcher is the typo-tolerant fallback used when the statistical
// classifier is not confident.
type FuzzyMatcher struct {
	intents   []models.IntentDefinition
	threshold int
}

func NewFuzzyMatcher(intents []models.IntentDefinition, threshold int) *FuzzyMatcher {
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}
	return &FuzzyMatcher{intents: intents, threshold: threshold}
}

// Match scores the raw input against every (intent, pattern) pair and
// returns the best tag with its score scaled to [0,1]. A candidate only
// replaces the running best on a strictly greater score, so the first
// pattern in definition order wins ties. Returns ("", 0) when nothing
// clears the threshold.
func (f *FuzzyMatcher) Match(raw string) (string, float64) {
	lowered := strings.ToLower(raw)
	bestTag := ""
	bestScore := 0
	for _, intent := range f.intents {
		for _, pattern := range intent.Patterns {
			score := fuzzy.PartialRatio(lowered, strings.ToLower(pattern))
			if score > bestScore && score >= f.threshold {
				bestScore = score
				bestTag = intent.Tag
			}
		}
	}
	return bestTag, float64(bestScore) / 100.0
}
