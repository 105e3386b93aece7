// Package ai talks to an OpenAI-compatible chat-completions endpoint and
// decodes the assistant's ACTION/DATA tag lines into typed actions. Nothing
// outside this package ever sees the raw tag format.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/JohnEvansOkyere/whatsapp-frontdesk-recep/internal/domain"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     logger.Logger
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		logger:     logger,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Generate(ctx context.Context, systemPrompt string, messages []domain.ChatMessage) (*domain.AIResult, error) {
	payload := chatRequest{
		Model:    c.model,
		Messages: make([]chatMessage, 0, len(messages)+1),
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, m := range messages {
		payload.Messages = append(payload.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call completion endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("completion endpoint returned %d: %s", resp.StatusCode, snippet)
	}

	var decoded chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return nil, fmt.Errorf("completion endpoint returned no choices")
	}

	result := c.parseReply(decoded.Choices[0].Message.Content)
	return result, nil
}
