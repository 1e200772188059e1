package llm

import (
	"fmt"
	"os"
)

const (
	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultOpenAIModel    = "gpt-4o"
	defaultMaxTokens      = 2048
	defaultTemperature    = 0.7
)

// creates a text generator with explicit configuration
func NewTextGenerator(config Config) (TextGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key cannot be empty")
	}

	switch config.Provider {
	case ProviderAnthropic, "":
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      config.APIKey,
			Model:       config.Model,
			MaxTokens:   config.MaxTokens,
			Temperature: config.Temperature,
		}), nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:    config.APIKey,
			Model:     config.Model,
			MaxTokens: config.MaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}

// creates a text generator with auto-configuration from environment variables
func NewTextGeneratorFromEnv() (TextGenerator, error) {
	provider := Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderAnthropic
	}

	var apiKey string

	switch provider {
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	}

	model := os.Getenv("LLM_MODEL")

	return NewTextGenerator(Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	})
}
