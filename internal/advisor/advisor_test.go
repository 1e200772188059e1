package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

type scriptedGenerator struct {
	text    string
	err     error
	lastReq llm.TextGenerationRequest
}

func (g *scriptedGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	g.lastReq = req

	if g.err != nil {
		return nil, g.err
	}

	return &llm.TextGenerationResponse{Text: g.text}, nil
}

func (g *scriptedGenerator) Model() string { return "scripted" }

var testItem = wardrobe.Item{
	ID:       "11111111-1111-1111-1111-111111111111",
	Name:     "brown leather boots",
	Category: "shoes",
	Color:    "brown",
	Brand:    "Redwing",
}

func TestCareInstructions(t *testing.T) {
	gen := &scriptedGenerator{text: `Here you go:
{"steps": ["remove laces", "brush off dirt", "apply conditioner"], "products": ["horsehair brush"], "frequency": "every 2 months"}`}

	shelf := []supplies.Supply{{Name: "horsehair brush", Kind: "brush", SuitableFor: "leather"}}

	instructions, raw, err := New(gen).CareInstructions(context.Background(), testItem, shelf, "conditioning")

	require.NoError(t, err)
	assert.Len(t, instructions.Steps, 3)
	assert.Equal(t, "every 2 months", instructions.Frequency)
	assert.NotEmpty(t, raw)

	// the shelf must reach the prompt so the model prefers owned supplies
	assert.Contains(t, gen.lastReq.SystemPrompt, "horsehair brush")
	assert.Contains(t, gen.lastReq.SystemPrompt, "conditioning")
}

func TestCareInstructions_GeneratorError(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("anthropic API error (status 529)")}

	_, _, err := New(gen).CareInstructions(context.Background(), testItem, nil, "cleaning")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCareInstructions_WrongShape(t *testing.T) {
	// valid JSON that doesn't fit the expected payload is still a failure
	gen := &scriptedGenerator{text: `{"steps": "not an array"}`}

	_, _, err := New(gen).CareInstructions(context.Background(), testItem, nil, "cleaning")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestShoppingRecommendations(t *testing.T) {
	gen := &scriptedGenerator{text: `{"items": [{"name": "white oxford shirt", "category": "tops", "reason": "pairs with the boots", "search_query": "white oxford shirt"}]}`}

	recommendations, raw, err := New(gen).ShoppingRecommendations(context.Background(), []wardrobe.Item{testItem})

	require.NoError(t, err)
	require.Len(t, recommendations.Items, 1)
	assert.Equal(t, "white oxford shirt", recommendations.Items[0].Name)
	assert.NotEmpty(t, raw)

	assert.Contains(t, gen.lastReq.SystemPrompt, "brown leather boots")
}

func TestShoppingRecommendations_NoJSON(t *testing.T) {
	gen := &scriptedGenerator{text: "I recommend buying a nice shirt."}

	_, _, err := New(gen).ShoppingRecommendations(context.Background(), []wardrobe.Item{testItem})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestOutfitSuggestion(t *testing.T) {
	gen := &scriptedGenerator{text: `{"reply": "boots with dark jeans", "outfits": [{"name": "casual friday", "item_ids": ["11111111-1111-1111-1111-111111111111"], "occasion": "office"}]}`}

	history := []llm.Message{
		{Role: "user", Content: "what should I wear to the office?"},
		{Role: "assistant", Content: "something smart casual"},
	}

	suggestion, _, err := New(gen).OutfitSuggestion(context.Background(), []wardrobe.Item{testItem}, history, "can you be more specific?")

	require.NoError(t, err)
	assert.Equal(t, "boots with dark jeans", suggestion.Reply)
	require.Len(t, suggestion.Outfits, 1)

	// history plus the new message, in order
	require.Len(t, gen.lastReq.Messages, 3)
	assert.Equal(t, "can you be more specific?", gen.lastReq.Messages[2].Content)
}

func TestOutfitSuggestion_TruncatesHistory(t *testing.T) {
	gen := &scriptedGenerator{text: `{"reply": "sure"}`}

	history := make([]llm.Message, 50)
	for i := range history {
		history[i] = llm.Message{Role: "user", Content: "older turn"}
	}

	_, _, err := New(gen).OutfitSuggestion(context.Background(), []wardrobe.Item{testItem}, history, "latest question")

	require.NoError(t, err)
	assert.Len(t, gen.lastReq.Messages, maxHistoryMessages+1)
}

func TestOutfitSuggestion_DropsEmptyHistoryTurns(t *testing.T) {
	gen := &scriptedGenerator{text: `{"reply": "sure"}`}

	history := []llm.Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: ""},
	}

	_, _, err := New(gen).OutfitSuggestion(context.Background(), []wardrobe.Item{testItem}, history, "next")

	require.NoError(t, err)
	assert.Len(t, gen.lastReq.Messages, 2)
}

func TestAdvisorTimeout(t *testing.T) {
	slow := &blockingGenerator{}

	_, _, err := NewWithTimeout(slow, 10*time.Millisecond).ShoppingRecommendations(context.Background(), []wardrobe.Item{testItem})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

type blockingGenerator struct{}

func (g *blockingGenerator) GenerateText(ctx context.Context, req llm.TextGenerationRequest) (*llm.TextGenerationResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (g *blockingGenerator) Model() string { return "blocking" }
