package config

// holds runtime configuration loaded from the environment
type Config struct {
	AnthropicKey         string
	OpenAIKey            string
	DatabaseURL          string
	JWTSecret            string
	BillingWebhookSecret string
	Environment          string
}

// reports whether the server is running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
