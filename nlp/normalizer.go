package nlp

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// stopWords is a fixed closed set of English stop words. Tokens shorter
// than three characters are dropped before this set is consulted, so only
// the longer entries ever match.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {},
	"you": {}, "all": {}, "any": {}, "can": {}, "had": {}, "has": {},
	"have": {}, "her": {}, "was": {}, "one": {}, "our": {}, "out": {},
	"his": {}, "him": {}, "she": {}, "they": {}, "them": {}, "their": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "with": {},
	"from": {}, "into": {}, "onto": {}, "your": {}, "yours": {},
	"what": {}, "when": {}, "where": {}, "which": {}, "who": {},
	"whom": {}, "why": {}, "how": {}, "will": {}, "would": {},
	"should": {}, "could": {}, "been": {}, "being": {}, "were": {},
	"does": {}, "did": {}, "doing": {}, "about": {}, "above": {},
	"after": {}, "again": {}, "against": {}, "before": {}, "below": {},
	"between": {}, "both": {}, "during": {}, "each": {}, "few": {},
	"further": {}, "here": {}, "there": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "only": {}, "own": {},
	"same": {}, "than": {}, "then": {}, "too": {}, "very": {},
	"just": {}, "now": {}, "over": {}, "under": {}, "once": {},
	"while": {}, "until": {},
}

// Normalizer reduces free text to a canonical form for classification.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewNormalizer loads the English lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load english lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lem}, nil
}

// Normalize lowercases the input, strips everything that is not an ASCII
// letter or whitespace, drops stop words and tokens shorter than three
// characters, lemmatizes what remains and rejoins with single spaces.
// Input that reduces to nothing yields an empty string.
func (n *Normalizer) Normalize(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		}
	}

	kept := make([]string, 0, 8)
	for _, word := range strings.Fields(b.String()) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		kept = append(kept, n.lemmatizer.Lemma(word))
	}
	return strings.Join(kept, " ")
}
