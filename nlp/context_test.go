package nlp

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvmish/Airline-Assistant/models"
)

func TestContextWindowSlides(t *testing.T) {
	store := NewContextStore(0)

	for i := 0; i < 12; i++ {
		store.Update("s1", "flight_status", nil, fmt.Sprintf("turn %d", i))
	}

	snap := store.GetOrCreate("s1").Snapshot()
	assert.Len(t, snap.ConversationFlow, contextWindow)
	assert.Len(t, snap.EntitiesHistory, contextWindow)
	assert.Equal(t, "turn 2", snap.ConversationFlow[0].Utterance)
	assert.Equal(t, "turn 11", snap.ConversationFlow[contextWindow-1].Utterance)
	assert.Equal(t, "flight_status", snap.PreviousIntent)
}

func TestContextSessionsAreIsolated(t *testing.T) {
	store := NewContextStore(0)

	store.Update("alice", "greeting", nil, "hello")
	store.Update("bob", "flight_status", nil, "flight status")

	assert.Equal(t, "greeting", store.GetOrCreate("alice").Snapshot().PreviousIntent)
	assert.Equal(t, "flight_status", store.GetOrCreate("bob").Snapshot().PreviousIntent)
	assert.Equal(t, 2, store.Len())
}

func TestContextClear(t *testing.T) {
	store := NewContextStore(0)

	store.Update("s1", "greeting", nil, "hello")
	store.Clear("s1")
	assert.Equal(t, 0, store.Len())

	// Clearing an unknown session is a no-op.
	store.Clear("missing")
	assert.Equal(t, 0, store.Len())
}

func TestContextEvictsOldestSessionAtCap(t *testing.T) {
	store := NewContextStore(2)

	store.Update("s1", "greeting", nil, "hello")
	time.Sleep(time.Millisecond)
	store.Update("s2", "greeting", nil, "hello")
	time.Sleep(time.Millisecond)
	store.Update("s3", "greeting", nil, "hello")

	assert.Equal(t, 2, store.Len())
	// s2 survived with its history intact.
	assert.Len(t, store.GetOrCreate("s2").Snapshot().ConversationFlow, 1)
}

func TestContextUpdateClonesEntities(t *testing.T) {
	store := NewContextStore(0)

	bag := models.EntityBag{models.EntityCities: {"Chicago"}}
	store.Update("s1", "search_flights", bag, "flights to chicago")
	bag[models.EntityCities][0] = "Dallas"

	snap := store.GetOrCreate("s1").Snapshot()
	assert.Equal(t, "Chicago", snap.EntitiesHistory[0][models.EntityCities][0])
}

func TestContextConcurrentUpdates(t *testing.T) {
	store := NewContextStore(0)

	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func(g int) {
			defer func() { done <- struct{}{} }()
			session := fmt.Sprintf("s%d", g)
			for i := 0; i < 50; i++ {
				store.Update(session, "greeting", nil, "hello")
			}
		}(g)
	}
	for g := 0; g < 4; g++ {
		<-done
	}

	assert.Equal(t, 4, store.Len())
	for g := 0; g < 4; g++ {
		snap := store.GetOrCreate(fmt.Sprintf("s%d", g)).Snapshot()
		assert.Len(t, snap.ConversationFlow, contextWindow)
	}
}
