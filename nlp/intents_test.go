package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvmish/Airline-Assistant/models"
)

func TestLoadIntentsBootstrapsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")

	intents, err := LoadIntents(path)
	require.NoError(t, err)
	require.NotEmpty(t, intents)
	assert.Equal(t, "greeting", intents[0].Tag)
	require.FileExists(t, path)

	// The persisted defaults load back identically.
	again, err := LoadIntents(path)
	require.NoError(t, err)
	assert.Equal(t, intents, again)
}

func TestLoadIntentsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"intents": [
			{"tag": "thanks", "patterns": ["thank you"], "responses": ["You're welcome!"]}
		]
	}`), 0o644))

	intents, err := LoadIntents(path)
	require.NoError(t, err)
	require.Len(t, intents, 1)
	assert.Equal(t, "thanks", intents[0].Tag)
	assert.Equal(t, []string{"thank you"}, intents[0].Patterns)
}

func TestLoadIntentsRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadIntents(path)
	assert.Error(t, err)
}

func TestResponderPicksTemplate(t *testing.T) {
	intents := []models.IntentDefinition{
		{Tag: "greeting", Responses: []string{"Hello!", "Hi there!"}},
	}

	r := NewResponder(intents, func(n int) int { return 1 })
	assert.Equal(t, "Hi there!", r.Respond("greeting"))

	r = NewResponder(intents, func(n int) int { return 0 })
	assert.Equal(t, "Hello!", r.Respond("greeting"))
}

func TestResponderClarifiesUnknownTag(t *testing.T) {
	r := NewResponder(nil, func(n int) int { return 0 })

	assert.Equal(t, ClarificationResponse, r.Respond("no_such_intent"))
	assert.Equal(t, ClarificationResponse, r.Respond(""))
}
