package advisor

import (
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
)

// produces structured styling advice from the wardrobe and supply data.
// it never touches cache or quota state: pure input to output, with the
// model call as its one side effect
type Advisor struct {
	generator llm.TextGenerator
	timeout   time.Duration
}

// structured result of a care-instruction generation
type CareInstructions struct {
	Steps     []string `json:"steps"`
	Products  []string `json:"products"`
	Frequency string   `json:"frequency"`
	Warnings  []string `json:"warnings,omitempty"`
}

// one suggested purchase to fill a wardrobe gap
type RecommendedItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Reason      string `json:"reason"`
	SearchQuery string `json:"search_query"`
}

// structured result of a shopping recommendation generation
type ShoppingRecommendations struct {
	Items []RecommendedItem `json:"items"`
}

// a complete outfit assembled from the person's own wardrobe
type Outfit struct {
	Name     string   `json:"name"`
	ItemIDs  []string `json:"item_ids"`
	Occasion string   `json:"occasion"`
	Notes    string   `json:"notes,omitempty"`
}

// structured result of a stylist chat turn
type OutfitSuggestion struct {
	Reply   string   `json:"reply"`
	Outfits []Outfit `json:"outfits,omitempty"`
}
