package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const aiSystemPrompt = "You are a friendly and highly efficient airline customer support agent named Sky. " +
	"Your goal is to assist users with their booking and flight inquiries. " +
	"Present flight status or search results clearly using bullet points. " +
	"If details are missing (like flight number), ask for them. " +
	"Maintain a positive, conversational tone."

// AIService is the optional hosted-LLM fallback for utterances the local
// engine cannot resolve. With no API key configured it is disabled and the
// caller keeps the local clarification response.
type AIService struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

func NewAIService(apiKey, apiURL, model string, maxTokens int, timeout time.Duration) *AIService {
	return &AIService{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the hosted fallback can be used at all.
func (s *AIService) Enabled() bool {
	return s != nil && s.apiKey != ""
}

type chatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateResponse asks the hosted model for an answer to the user prompt.
func (s *AIService) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("AI service is not configured")
	}

	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: aiSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: s.maxTokens,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error: %s", string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response generated")
	}
	return result.Choices[0].Message.Content, nil
}
