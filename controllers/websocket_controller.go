package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/dhruvmish/Airline-Assistant/models"
	"github.com/dhruvmish/Airline-Assistant/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
}

func NewWebSocketController(chatbotService *services.ChatbotService) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
	}
}

// HandleWebSocket runs the realtime chat loop. Each connection gets its
// own session id unless the client supplies one, so conversation context
// survives across messages on the same socket.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log.Printf("New chat session connected: %.8s...", sessionID)

	for {
		var msg struct {
			Message string `json:"message"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Session %.8s disconnected: %v", sessionID, err)
			break
		}
		if msg.Message == "" {
			continue
		}

		response := wc.chatbotService.ProcessMessage(c.Request.Context(), models.ChatRequest{
			Message:   msg.Message,
			SessionID: sessionID,
			Channel:   models.ChannelWebSocket,
		})
		log.Printf("Session %.8s | User: %s | Intent: %s", sessionID, msg.Message, response.Intent)

		if err := conn.WriteJSON(response); err != nil {
			log.Printf("Session %.8s write error: %v", sessionID, err)
			break
		}
	}
}
