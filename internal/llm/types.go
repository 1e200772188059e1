package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// generates free-form text from a system prompt and conversation
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// a single turn in a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
}

type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for text generator initialization
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string // e.g., "claude-sonnet-4-20250514"
	MaxTokens   int
	Temperature float32
}
