package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvmish/Airline-Assistant/models"
	"github.com/dhruvmish/Airline-Assistant/nlp"
	"github.com/dhruvmish/Airline-Assistant/services"
)

const controllerTestIntents = `{
  "intents": [
    {
      "tag": "greeting",
      "patterns": ["hello", "hey there", "good morning"],
      "responses": ["Hello! How can I help you today?"]
    },
    {
      "tag": "flight_status",
      "patterns": ["flight status", "check flight status", "is my flight delayed"],
      "responses": ["I can check that. What's the flight number?"]
    }
  ]
}`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	intentsPath := filepath.Join(dir, "intents.json")
	require.NoError(t, os.WriteFile(intentsPath, []byte(controllerTestIntents), 0o644))

	engine, err := nlp.NewEngine(nlp.Config{
		IntentsPath:    intentsPath,
		ModelPath:      filepath.Join(dir, "model.gob"),
		ResponsePicker: func(n int) int { return 0 },
	})
	require.NoError(t, err)

	airlineSvc := services.NewAirlineService("", "http://api.invalid/v1/flights", time.Second)
	aiSvc := services.NewAIService("", "http://api.invalid/v1/chat", "gpt-4o", 100, time.Second)
	messageSvc := services.NewMessageService(nil)
	chatbotSvc := services.NewChatbotService(engine, airlineSvc, services.NewBookingService(), aiSvc, messageSvc)
	controller := NewChatbotController(chatbotSvc, messageSvc)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/chat", controller.HandleChat)
	router.POST("/entities", controller.ExtractEntities)
	router.GET("/respond/:tag", controller.GetResponse)
	router.GET("/intents", controller.GetSupportedIntents)
	router.GET("/chat/context", controller.GetContext)
	router.POST("/chat/clear", controller.ClearSession)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChat(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/chat", `{"message": "Hello", "session_id": "s1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "greeting", resp.Intent)
	assert.Equal(t, "Hello! How can I help you today?", resp.Response)
	assert.Equal(t, "s1", resp.SessionID)
}

func TestHandleChatRequiresMessage(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/chat", `{"session_id": "s1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractEntitiesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/entities", `{"text": "Flight AA123 status"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Entities models.EntityBag `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AA123"}, resp.Entities[models.EntityFlightNumbers])
}

func TestGetResponseEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/respond/greeting", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello! How can I help you today?")
}

func TestGetSupportedIntents(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/intents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Intents []struct {
			Intent   string   `json:"intent"`
			Examples []string `json:"examples"`
		} `json:"intents"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Intents, 2)
	assert.Equal(t, "greeting", resp.Intents[0].Intent)
	assert.NotEmpty(t, resp.Intents[0].Examples)
}

func TestGetContextEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(router, http.MethodPost, "/chat", `{"message": "Hello", "session_id": "ctx-1"}`)

	w := doJSON(router, http.MethodGet, "/chat/context?session_id=ctx-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var snap nlp.ContextSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Equal(t, "greeting", snap.PreviousIntent)
	assert.Len(t, snap.ConversationFlow, 1)
}

func TestGetContextRequiresSessionID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/chat/context", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearSessionEndpoint(t *testing.T) {
	router := newTestRouter(t)

	doJSON(router, http.MethodPost, "/chat", `{"message": "Hello", "session_id": "gone"}`)
	w := doJSON(router, http.MethodPost, "/chat/clear", `{"session_id": "gone"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/chat/context?session_id=gone", "")
	var snap nlp.ContextSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Empty(t, snap.ConversationFlow)
}
