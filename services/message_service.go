package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dhruvmish/Airline-Assistant/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageService archives chat transcripts to MongoDB. A nil receiver or a
// service built without a database is a no-op, so the chat path works with
// no persistence configured.
type MessageService struct {
	collection *mongo.Collection
}

func NewMessageService(db *mongo.Database) *MessageService {
	if db == nil {
		return &MessageService{}
	}
	return &MessageService{collection: db.Collection("messages")}
}

// Enabled reports whether messages are actually persisted.
func (s *MessageService) Enabled() bool {
	return s != nil && s.collection != nil
}

// Save stores one processed chat turn.
func (s *MessageService) Save(ctx context.Context, msg *models.Message) error {
	if !s.Enabled() {
		return nil
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if _, err := s.collection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("save message: %w", err)
	}
	return nil
}

// History returns the most recent messages of a session, oldest first.
func (s *MessageService) History(ctx context.Context, sessionID string, limit int) ([]models.Message, error) {
	if !s.Enabled() {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	// Reverse to chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ClearSession deletes a session's stored transcript.
func (s *MessageService) ClearSession(ctx context.Context, sessionID string) error {
	if !s.Enabled() {
		return nil
	}
	if _, err := s.collection.DeleteMany(ctx, bson.M{"session_id": sessionID}); err != nil {
		return fmt.Errorf("clear session messages: %w", err)
	}
	return nil
}
