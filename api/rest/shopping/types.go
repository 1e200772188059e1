package shopping

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// the variant under which the per-person recommendation set is cached
const cacheVariant = "shopping_recommendations"

// how many wardrobe items feed the recommendation prompt
const promptItemLimit = 60

type Response struct {
	Items  []advisor.RecommendedItem `json:"items"`
	Cached bool                      `json:"cached"`
	Reason string                    `json:"reason,omitempty"`
}

type ClickResponse struct {
	ClickCount int `json:"click_count"`
}

// narrow views over the repositories, so handler tests can fake them

type PersonFinder interface {
	FindByID(ctx context.Context, personID string) (*people.Person, error)
}

type ItemLister interface {
	ListActive(ctx context.Context, personID string, limit int) ([]wardrobe.Item, error)
}

type GenerationCache interface {
	Get(ctx context.Context, key gencache.Key) (*gencache.Entry, error)
	Put(ctx context.Context, key gencache.Key, payload json.RawMessage, generatedAgainst time.Time) (*gencache.Entry, error)
	RegisterClick(ctx context.Context, key gencache.Key) (int, error)
}

type RecommendationGenerator interface {
	ShoppingRecommendations(ctx context.Context, items []wardrobe.Item) (*advisor.ShoppingRecommendations, json.RawMessage, error)
}

// everything the shopping handlers need. Now is injectable for throttle
// tests and defaults to time.Now
type Deps struct {
	People  PersonFinder
	Items   ItemLister
	Cache   GenerationCache
	Advisor RecommendationGenerator
	Now     func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}

	return time.Now()
}
