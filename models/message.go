package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageChannel represents the communication channel
type MessageChannel string

const (
	ChannelWeb       MessageChannel = "web"
	ChannelWebSocket MessageChannel = "websocket"
)

// Message is one processed chat turn as persisted to the messages collection.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Intent      string             `bson:"intent" json:"intent"`
	Confidence  float64            `bson:"confidence" json:"confidence"`
	Entities    EntityBag          `bson:"entities,omitempty" json:"entities,omitempty"`
	Username    string             `bson:"username,omitempty" json:"username,omitempty"`
	Channel     MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is the inbound payload for chat endpoints. SessionID is
// optional; without one the turn is processed statelessly.
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id,omitempty"`
	Channel   MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is the outbound payload for chat endpoints.
type ChatResponse struct {
	Response   string                 `json:"response"`
	Intent     string                 `json:"intent"`
	Confidence float64                `json:"confidence"`
	Entities   EntityBag              `json:"entities,omitempty"`
	SessionID  string                 `json:"session_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
}
