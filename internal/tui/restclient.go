package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for stylist requests; model calls can take a while
const chatRequestTimeout = 60 * time.Second

// manages HTTP requests to the stylist REST API
type StylistClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// creates a new stylist REST client. the endpoint and JWT come from the
// environment; the token is the one issued by the OAuth callback
func NewStylistClient() *StylistClient {
	endpoint := os.Getenv("COORDINATOR_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &StylistClient{
		endpoint: endpoint,
		token:    os.Getenv("COORDINATOR_TOKEN"),
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
		},
	}
}

// sends one chat turn to the stylist REST API
func (c *StylistClient) Chat(ctx context.Context, message string, history []MessageModel) (*ChatResponseMsg, error) {
	// drop empty turns; the server rejects messages without content
	filteredHistory := make([]MessageModel, 0, len(history))
	for _, msg := range history {
		if msg.Content != "" {
			filteredHistory = append(filteredHistory, msg)
		}
	}

	payload := chatRequest{
		Message: message,
		History: filteredHistory,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/stylist/chat", c.endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp chatErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}

		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &ChatResponseMsg{
		userQuery: message,
		reply:     result.Reply,
		outfits:   result.Outfits,
	}, nil
}

// returns a tea.Cmd that sends one chat turn
func (c *StylistClient) ChatCmd(message string, history []MessageModel) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		resp, err := c.Chat(ctx, message, history)
		if err != nil {
			return ChatErrorMsg{userQuery: message, err: err}
		}

		return *resp
	}
}

// REST API request/response types

type chatRequest struct {
	Message string         `json:"message"`
	History []MessageModel `json:"history,omitempty"`
}

type chatResponse struct {
	Reply   string        `json:"reply"`
	Outfits []OutfitModel `json:"outfits,omitempty"`
}

type chatErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
