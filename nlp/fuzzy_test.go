package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvmish/Airline-Assistant/models"
)

func fuzzyFixture() []models.IntentDefinition {
	return []models.IntentDefinition{
		{Tag: "greeting", Patterns: []string{"hello", "good morning"}},
		{Tag: "flight_status", Patterns: []string{"flight status", "check flight status"}},
		{Tag: "booking_inquiry", Patterns: []string{"my booking", "booking details"}},
	}
}

func TestFuzzyMatchToleratesTypos(t *testing.T) {
	m := NewFuzzyMatcher(fuzzyFixture(), DefaultFuzzyThreshold)

	tag, score := m.Match("shw me flght staus")
	assert.Equal(t, "flight_status", tag)
	assert.GreaterOrEqual(t, score, 0.7)
	assert.LessOrEqual(t, score, 1.0)
}

func TestFuzzyMatchIsCaseInsensitive(t *testing.T) {
	m := NewFuzzyMatcher(fuzzyFixture(), DefaultFuzzyThreshold)

	tag, score := m.Match("FLIGHT STATUS")
	assert.Equal(t, "flight_status", tag)
	assert.Equal(t, 1.0, score)
}

func TestFuzzyMatchRejectsUnrelatedInput(t *testing.T) {
	m := NewFuzzyMatcher(fuzzyFixture(), DefaultFuzzyThreshold)

	tag, score := m.Match("zzzzzz")
	assert.Equal(t, "", tag)
	assert.Equal(t, 0.0, score)
}

func TestFuzzyMatcherDefaultsThreshold(t *testing.T) {
	m := NewFuzzyMatcher(fuzzyFixture(), 0)
	assert.Equal(t, DefaultFuzzyThreshold, m.threshold)
}
