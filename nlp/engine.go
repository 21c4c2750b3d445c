// Package nlp implements the local intent-understanding engine: a trained
// statistical classifier with a fuzzy-matching fallback, pattern-based
// entity extraction and per-session conversational context. It performs no
// network I/O; the only disk access is the one-time intent-configuration
// load and model load/train/save at startup.
package nlp

import (
	"math/rand"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// FallbackResponse is returned when no intent can be resolved at all.
const FallbackResponse = "I'm not sure what you're looking for. I can help you with flight status, bookings, and flight searches. What do you need?"

// Config carries the engine's startup knobs.
type Config struct {
	IntentsPath         string
	ModelPath           string
	ConfidenceThreshold float64
	FuzzyThreshold      int
	MaxSessions         int
	// ResponsePicker selects among response templates; nil uses math/rand.
	// Injectable so tests can assert exact responses.
	ResponsePicker func(n int) int
}

// Engine composes the normalizer, extractor, classifier, fuzzy matcher,
// responder and context store into one request -> structured-result call.
// It holds no ambient state: construct one and pass it by reference.
type Engine struct {
	intents    []models.IntentDefinition
	normalizer *Normalizer
	extractor  *Extractor
	classifier *Classifier
	fuzzy      *FuzzyMatcher
	responder  *Responder
	contexts   *ContextStore
	threshold  float64
}

// NewEngine loads the intent configuration (bootstrapping defaults when
// absent), then loads the cached model or trains and saves a fresh one.
// Artifact load/save failures are fatal: the engine cannot run without a
// trained or trainable model.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.ConfidenceThreshold <= 0 {
		cfg.ConfidenceThreshold = DefaultConfidenceThreshold
	}

	intents, err := LoadIntents(cfg.IntentsPath)
	if err != nil {
		return nil, err
	}

	normalizer, err := NewNormalizer()
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(cfg.ConfidenceThreshold)
	if err := classifier.LoadOrTrain(cfg.ModelPath, TrainingData(intents, normalizer)); err != nil {
		return nil, err
	}

	picker := cfg.ResponsePicker
	if picker == nil {
		picker = rand.Intn
	}

	return &Engine{
		intents:    intents,
		normalizer: normalizer,
		extractor:  NewExtractor(),
		classifier: classifier,
		fuzzy:      NewFuzzyMatcher(intents, cfg.FuzzyThreshold),
		responder:  NewResponder(intents, picker),
		contexts:   NewContextStore(cfg.MaxSessions),
		threshold:  cfg.ConfidenceThreshold,
	}, nil
}

// Process maps one raw utterance to a response, a resolved intent with its
// confidence, and the extracted entities. With a non-empty sessionID the
// turn is appended to that session's context. It never fails: internal
// component failures degrade to an empty intent and the fallback response.
func (e *Engine) Process(sessionID, message string) models.ProcessResult {
	entities := e.extractor.Extract(message)

	verdict := e.classifier.Predict(e.normalizer.Normalize(message))
	intent, confidence := verdict.Intent, verdict.Confidence

	if intent == "" || confidence < e.threshold {
		if fuzzyTag, fuzzyScore := e.fuzzy.Match(message); fuzzyTag != "" && fuzzyScore > confidence {
			intent, confidence = fuzzyTag, fuzzyScore
		}
	}

	response := FallbackResponse
	if intent != "" {
		response = e.responder.Respond(intent)
	}

	if sessionID != "" {
		e.contexts.Update(sessionID, intent, entities, message)
	}

	return models.ProcessResult{
		Response:   response,
		Intent:     intent,
		Confidence: confidence,
		Entities:   entities,
	}
}

// ExtractEntities exposes the extractor for callers that want entities
// without intent resolution.
func (e *Engine) ExtractEntities(text string) models.EntityBag {
	return e.extractor.Extract(text)
}

// RespondTo returns a response template for an already-resolved tag.
func (e *Engine) RespondTo(tag string) string {
	return e.responder.Respond(tag)
}

// Normalize exposes the normalizer, mainly for diagnostics.
func (e *Engine) Normalize(text string) string {
	return e.normalizer.Normalize(text)
}

// Intents returns a copy of the loaded intent definitions.
func (e *Engine) Intents() []models.IntentDefinition {
	return append([]models.IntentDefinition(nil), e.intents...)
}

// SessionSnapshot returns a copy of one session's rolling context.
func (e *Engine) SessionSnapshot(sessionID string) ContextSnapshot {
	return e.contexts.GetOrCreate(sessionID).Snapshot()
}

// ClearSession drops a session's context entirely.
func (e *Engine) ClearSession(sessionID string) {
	e.contexts.Clear(sessionID)
}

// ActiveSessions reports how many session contexts are live.
func (e *Engine) ActiveSessions() int {
	return e.contexts.Len()
}
