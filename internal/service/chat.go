package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
)

const chatSystemPrompt = `You are a Smart Agriculture AI assistant.
If Tamil, reply Tamil.
If English, reply English.
Give structured farming advice.`

type chatService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewChatService(apiKey, model, baseURL string) ChatService {
	return &chatService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *chatService) Complete(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: chatSystemPrompt},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", err
	}

	url := s.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	logger.ExternalServiceCall("openrouter", "chat/completions", "model", s.model)
	resp, err := s.client.Do(req)
	if err != nil {
		logger.ExternalServiceResult("openrouter", "chat/completions", err)
		return "", &domain.UpstreamError{Service: "openrouter", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status %d", resp.StatusCode)
		logger.ExternalServiceResult("openrouter", "chat/completions", err)
		return "", &domain.UpstreamError{Service: "openrouter", Err: err}
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		logger.ExternalServiceResult("openrouter", "chat/completions", err)
		return "", &domain.UpstreamError{Service: "openrouter", Err: err}
	}
	logger.ExternalServiceResult("openrouter", "chat/completions", nil)

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "No response", nil
	}
	return completion.Choices[0].Message.Content, nil
}
