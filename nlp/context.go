package nlp

import (
	"sync"
	"time"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// contextWindow caps both rolling sequences per session.
const contextWindow = 10

// ConversationTurn is one processed utterance in a session's history.
type ConversationTurn struct {
	Utterance string           `json:"utterance"`
	Intent    string           `json:"intent"`
	Entities  models.EntityBag `json:"entities,omitempty"`
}

// SessionContext is the rolling memory for one chat session. It is owned
// by the ContextStore and mutated under its own lock, so updates to
// different sessions never block each other.
type SessionContext struct {
	mu               sync.Mutex
	previousIntent   string
	entitiesHistory  []models.EntityBag
	conversationFlow []ConversationTurn
}

// ContextSnapshot is a consistent copy of one session's state.
type ContextSnapshot struct {
	PreviousIntent   string             `json:"previous_intent"`
	EntitiesHistory  []models.EntityBag `json:"entities_history"`
	ConversationFlow []ConversationTurn `json:"conversation_flow"`
}

// Snapshot returns a copy safe to read without holding the session lock.
func (c *SessionContext) Snapshot() ContextSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ContextSnapshot{
		PreviousIntent:   c.previousIntent,
		EntitiesHistory:  append([]models.EntityBag(nil), c.entitiesHistory...),
		ConversationFlow: append([]ConversationTurn(nil), c.conversationFlow...),
	}
}

func (c *SessionContext) append(intent string, entities models.EntityBag, utterance string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.previousIntent = intent
	c.entitiesHistory = append(c.entitiesHistory, entities.Clone())
	c.conversationFlow = append(c.conversationFlow, ConversationTurn{
		Utterance: utterance,
		Intent:    intent,
		Entities:  entities.Clone(),
	})

	// Sliding window: drop from the front, copying so the old backing
	// arrays do not pin evicted entries.
	if n := len(c.conversationFlow); n > contextWindow {
		c.conversationFlow = append([]ConversationTurn(nil), c.conversationFlow[n-contextWindow:]...)
	}
	if n := len(c.entitiesHistory); n > contextWindow {
		c.entitiesHistory = append([]models.EntityBag(nil), c.entitiesHistory[n-contextWindow:]...)
	}
}

// ContextStore holds per-session conversation state. Sessions are created
// lazily and live until explicitly cleared; with maxSessions > 0 the
// oldest-touched session is evicted once the cap is reached (the unlimited
// default preserves the original behavior).
type ContextStore struct {
	mu          sync.Mutex
	sessions    map[string]*SessionContext
	touched     map[string]time.Time
	maxSessions int
}

func NewContextStore(maxSessions int) *ContextStore {
	return &ContextStore{
		sessions:    make(map[string]*SessionContext),
		touched:     make(map[string]time.Time),
		maxSessions: maxSessions,
	}
}

// GetOrCreate returns the context for sessionID, creating it on first use.
func (s *ContextStore) GetOrCreate(sessionID string) *SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, ok := s.sessions[sessionID]
	if !ok {
		s.evictLocked()
		ctx = &SessionContext{}
		s.sessions[sessionID] = ctx
	}
	s.touched[sessionID] = time.Now()
	return ctx
}

// Update appends one turn to the session's rolling history.
func (s *ContextStore) Update(sessionID, intent string, entities models.EntityBag, utterance string) {
	s.GetOrCreate(sessionID).append(intent, entities, utterance)
}

// Clear removes a session's state entirely.
func (s *ContextStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.touched, sessionID)
}

// Len reports the number of live sessions.
func (s *ContextStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *ContextStore) evictLocked() {
	if s.maxSessions <= 0 || len(s.sessions) < s.maxSessions {
		return
	}
	oldestID := ""
	var oldest time.Time
	for id, at := range s.touched {
		if oldestID == "" || at.Before(oldest) {
			oldestID, oldest = id, at
		}
	}
	delete(s.sessions, oldestID)
	delete(s.touched, oldestID)
}
