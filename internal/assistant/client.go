// Package assistant provides the client for the remote assistant/booking
// service.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abcdental/chat-platform/internal/model"
)

// Client sends user messages to the assistant service.
type Client interface {
	SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

// HTTPClient is the HTTP implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient creates an assistant client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SendMessage posts one chat message and decodes the reply. Non-2xx status
// codes and undecodable bodies are both errors; the dispatcher treats every
// error here uniformly.
func (c *HTTPClient) SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat/message", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("chat request returned status %d", resp.StatusCode)
	}

	var chatResp model.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}
	if chatResp.MessageID == "" || chatResp.BotResponse == "" {
		return nil, fmt.Errorf("chat response missing required fields")
	}

	return &chatResp, nil
}
