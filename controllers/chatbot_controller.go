package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhruvmish/Airline-Assistant/models"
	"github.com/dhruvmish/Airline-Assistant/services"
)

type ChatbotController struct {
	chatbotService *services.ChatbotService
	messageService *services.MessageService
}

func NewChatbotController(chatbotService *services.ChatbotService, messageService *services.MessageService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
		messageService: messageService,
	}
}

// HandleChat processes one chat message. The session id is optional:
// without one the turn is processed statelessly.
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if req.Channel == "" {
		req.Channel = models.ChannelWeb
	}

	response := cc.chatbotService.ProcessMessage(c.Request.Context(), req)
	c.JSON(http.StatusOK, response)
}

// ExtractEntities exposes entity extraction as a standalone call.
func (cc *ChatbotController) ExtractEntities(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entities": cc.chatbotService.Engine().ExtractEntities(req.Text),
	})
}

// GetResponse returns a response template for an already-resolved tag.
func (cc *ChatbotController) GetResponse(c *gin.Context) {
	tag := c.Param("tag")
	c.JSON(http.StatusOK, gin.H{
		"intent":   tag,
		"response": cc.chatbotService.Engine().RespondTo(tag),
	})
}

// GetSupportedIntents returns the configured intent definitions.
func (cc *ChatbotController) GetSupportedIntents(c *gin.Context) {
	intents := cc.chatbotService.Engine().Intents()

	out := make([]gin.H, 0, len(intents))
	for _, intent := range intents {
		out = append(out, gin.H{
			"intent":   intent.Tag,
			"examples": intent.Patterns,
		})
	}
	c.JSON(http.StatusOK, gin.H{"intents": out})
}

// GetContext returns a session's rolling conversation context.
func (cc *ChatbotController) GetContext(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}
	c.JSON(http.StatusOK, cc.chatbotService.Engine().SessionSnapshot(sessionID))
}

// GetChatHistory retrieves a session's stored transcript.
func (cc *ChatbotController) GetChatHistory(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	history, err := cc.messageService.History(c.Request.Context(), sessionID, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"count":   len(history),
	})
}

// ClearSession drops a session's in-memory context and stored transcript.
func (cc *ChatbotController) ClearSession(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	cc.chatbotService.Engine().ClearSession(req.SessionID)
	if err := cc.messageService.ClearSession(c.Request.Context(), req.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session cleared"})
}
