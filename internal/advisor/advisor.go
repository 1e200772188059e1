// Package advisor builds bounded prompts from wardrobe and supply data,
// invokes the language model, and parses its output into typed payloads.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

const defaultRequestTimeout = 45 * time.Second

func New(generator llm.TextGenerator) *Advisor {
	return &Advisor{
		generator: generator,
		timeout:   defaultRequestTimeout,
	}
}

// creates an advisor with a custom model-call timeout, for tests
func NewWithTimeout(generator llm.TextGenerator, timeout time.Duration) *Advisor {
	return &Advisor{generator: generator, timeout: timeout}
}

// generates care instructions for one wardrobe item given the owner's
// supply shelf. returns the typed payload and its raw JSON for caching
func (a *Advisor) CareInstructions(ctx context.Context, item wardrobe.Item, shelf []supplies.Supply, careType string) (*CareInstructions, json.RawMessage, error) {
	raw, err := a.generate(ctx, buildCarePrompt(item, shelf, careType),
		fmt.Sprintf("How do I perform %s care on my %s?", careType, item.Name))
	if err != nil {
		return nil, nil, err
	}

	var instructions CareInstructions
	if err := json.Unmarshal(raw, &instructions); err != nil {
		return nil, nil, fmt.Errorf("%w: unexpected payload shape: %s", ErrMalformedResponse, err)
	}

	return &instructions, raw, nil
}

// generates shopping recommendations from the active wardrobe
func (a *Advisor) ShoppingRecommendations(ctx context.Context, items []wardrobe.Item) (*ShoppingRecommendations, json.RawMessage, error) {
	raw, err := a.generate(ctx, buildShoppingPrompt(items),
		"What should I add to my wardrobe next?")
	if err != nil {
		return nil, nil, err
	}

	var recommendations ShoppingRecommendations
	if err := json.Unmarshal(raw, &recommendations); err != nil {
		return nil, nil, fmt.Errorf("%w: unexpected payload shape: %s", ErrMalformedResponse, err)
	}

	return &recommendations, raw, nil
}

// answers one stylist chat turn. history is truncated to the most recent
// turns to keep the prompt bounded
func (a *Advisor) OutfitSuggestion(ctx context.Context, items []wardrobe.Item, history []llm.Message, message string) (*OutfitSuggestion, json.RawMessage, error) {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		if msg.Content != "" {
			messages = append(messages, msg)
		}
	}

	messages = append(messages, llm.Message{Role: "user", Content: message})

	raw, err := a.generateConversation(ctx, buildStylistPrompt(items), messages)
	if err != nil {
		return nil, nil, err
	}

	var suggestion OutfitSuggestion
	if err := json.Unmarshal(raw, &suggestion); err != nil {
		return nil, nil, fmt.Errorf("%w: unexpected payload shape: %s", ErrMalformedResponse, err)
	}

	return &suggestion, raw, nil
}

func (a *Advisor) generate(ctx context.Context, systemPrompt, userMessage string) (json.RawMessage, error) {
	return a.generateConversation(ctx, systemPrompt, []llm.Message{
		{Role: "user", Content: userMessage},
	})
}

// runs the model call under the adapter timeout and extracts the JSON
// payload. call errors, timeouts and parse failures all collapse into
// ErrMalformedResponse so callers have one failure path to reason about
func (a *Advisor) generateConversation(ctx context.Context, systemPrompt string, messages []llm.Message) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     messages,
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err)
	}

	raw, err := ExtractJSONObject(response.Text)
	if err != nil {
		return nil, err
	}

	return raw, nil
}
