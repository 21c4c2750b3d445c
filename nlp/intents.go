package nlp

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// ClarificationResponse is returned when a tag has no definition,
// including the empty "no intent" tag.
const ClarificationResponse = "I'm not sure how to help with that. Could you please rephrase your question?"

// defaultIntents is the built-in minimal configuration written out when no
// intents file exists yet.
var defaultIntents = models.IntentFile{Intents: []models.IntentDefinition{
	{
		Tag:       "greeting",
		Patterns:  []string{"hi", "hello", "hey"},
		Responses: []string{"Hello! How can I help you with your flight needs?"},
	},
	{
		Tag:       "flight_status",
		Patterns:  []string{"flight status", "check flight", "flight info"},
		Responses: []string{"I can check flight status. What's the flight number?"},
	},
}}

// LoadIntents reads intent definitions from path. A missing file is not an
// error: the built-in defaults are synthesized and persisted back to the
// same location.
func LoadIntents(path string) ([]models.IntentDefinition, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Intents file %s not found, creating basic intents", path)
		return bootstrapIntents(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read intents: %w", err)
	}

	var file models.IntentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse intents: %w", err)
	}
	return file.Intents, nil
}

func bootstrapIntents(path string) ([]models.IntentDefinition, error) {
	data, err := json.MarshalIndent(defaultIntents, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal default intents: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write default intents: %w", err)
	}
	return defaultIntents.Intents, nil
}

// Responder maps a resolved intent tag to one of its response templates.
// The picker is injectable so tests can assert exact output.
type Responder struct {
	byTag map[string][]string
	pick  func(n int) int
}

func NewResponder(intents []models.IntentDefinition, pick func(n int) int) *Responder {
	byTag := make(map[string][]string, len(intents))
	for _, intent := range intents {
		byTag[intent.Tag] = intent.Responses
	}
	return &Responder{byTag: byTag, pick: pick}
}

// Respond returns one response template for the tag, or the fixed
// clarification message when the tag has no definition.
func (r *Responder) Respond(tag string) string {
	responses := r.byTag[tag]
	if len(responses) == 0 {
		return ClarificationResponse
	}
	return responses[r.pick(len(responses))]
}
