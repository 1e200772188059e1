package advisor

import (
	"fmt"
	"strings"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// prompt input bounds, so prompt size stays predictable regardless of how
// large a wardrobe grows
const (
	maxPromptItems      = 60
	maxHistoryMessages  = 20
	maxRecommendations  = 5
	maxOutfitsPerAnswer = 3
)

func buildCarePrompt(item wardrobe.Item, shelf []supplies.Supply, careType string) string {
	var builder strings.Builder

	builder.WriteString("You are a footwear and garment care expert.\n\n")
	builder.WriteString("ITEM TO CARE FOR:\n")
	builder.WriteString(describeItem(item))
	builder.WriteString(fmt.Sprintf("\nREQUESTED CARE TYPE: %s\n", careType))

	if len(shelf) > 0 {
		builder.WriteString("\nSUPPLIES THE OWNER ALREADY HAS:\n")

		for _, supply := range shelf {
			builder.WriteString(fmt.Sprintf("- %s (%s)", supply.Name, supply.Kind))

			if supply.SuitableFor != "" {
				builder.WriteString(fmt.Sprintf(", suitable for %s", supply.SuitableFor))
			}

			builder.WriteString("\n")
		}

		builder.WriteString("\nPrefer supplies the owner already has; only suggest purchases when nothing on the shelf fits.\n")
	} else {
		builder.WriteString("\nThe owner has no care supplies yet - recommend affordable basics.\n")
	}

	builder.WriteString(`
Return ONLY a JSON object with this structure, no markdown or explanations:
{
  "steps": ["ordered care steps"],
  "products": ["products to use, from the shelf where possible"],
  "frequency": "how often to repeat this care routine",
  "warnings": ["things that would damage this item"]
}`)

	return builder.String()
}

func buildShoppingPrompt(items []wardrobe.Item) string {
	var builder strings.Builder

	builder.WriteString("You are a personal shopping assistant.\n\n")
	builder.WriteString("CURRENT WARDROBE:\n")

	for _, item := range boundItems(items) {
		builder.WriteString(describeItem(item))
	}

	builder.WriteString(fmt.Sprintf(`
Identify up to %d gaps in this wardrobe - versatile pieces that would
combine well with what the owner already has.

Return ONLY a JSON object with this structure, no markdown or explanations:
{
  "items": [
    {
      "name": "what to buy",
      "category": "tops|bottoms|shoes|outerwear|accessories",
      "reason": "why this fills a gap, referencing owned items",
      "search_query": "short query for a shopping site"
    }
  ]
}`, maxRecommendations))

	return builder.String()
}

func buildStylistPrompt(items []wardrobe.Item) string {
	var builder strings.Builder

	builder.WriteString("You are a friendly personal stylist. Assemble outfits only from the owner's wardrobe below; never invent items.\n\n")
	builder.WriteString("WARDROBE (id | name | category | color | brand):\n")

	for _, item := range boundItems(items) {
		builder.WriteString(fmt.Sprintf("%s | %s | %s | %s | %s\n",
			item.ID, item.Name, item.Category, item.Color, item.Brand))
	}

	builder.WriteString(fmt.Sprintf(`
Answer the owner's question conversationally and, when an outfit is called
for, include up to %d outfits built from wardrobe item ids.

Return ONLY a JSON object with this structure, no markdown or explanations:
{
  "reply": "your conversational answer",
  "outfits": [
    {
      "name": "short outfit name",
      "item_ids": ["ids of wardrobe items used"],
      "occasion": "where this works",
      "notes": "styling tips"
    }
  ]
}`, maxOutfitsPerAnswer))

	return builder.String()
}

func describeItem(item wardrobe.Item) string {
	parts := []string{item.Name, item.Category}

	if item.Color != "" {
		parts = append(parts, item.Color)
	}

	if item.Brand != "" {
		parts = append(parts, item.Brand)
	}

	return "- " + strings.Join(parts, ", ") + "\n"
}

func boundItems(items []wardrobe.Item) []wardrobe.Item {
	if len(items) > maxPromptItems {
		return items[:maxPromptItems]
	}

	return items
}
