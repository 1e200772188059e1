package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have a .env file
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	billingSecret := os.Getenv("BILLING_WEBHOOK_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if anthropicKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if billingSecret == "" {
		return nil, fmt.Errorf("BILLING_WEBHOOK_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		AnthropicKey:         anthropicKey,
		OpenAIKey:            openaiKey,
		DatabaseURL:          databaseURL,
		JWTSecret:            jwtSecret,
		BillingWebhookSecret: billingSecret,
		Environment:          environment,
	}, nil
}
