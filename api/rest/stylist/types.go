package stylist

import (
	"context"
	"encoding/json"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/llm"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// how many wardrobe items feed the stylist prompt
const promptItemLimit = 60

type Request struct {
	Message string        `json:"message" binding:"required"`
	History []llm.Message `json:"history"`
}

type Response struct {
	Reply   string           `json:"reply"`
	Outfits []advisor.Outfit `json:"outfits,omitempty"`
}

// narrow views over the repositories, so handler tests can fake them

type PersonFinder interface {
	FindByID(ctx context.Context, personID string) (*people.Person, error)
}

type ItemLister interface {
	ListActive(ctx context.Context, personID string, limit int) ([]wardrobe.Item, error)
}

type OutfitAdvisor interface {
	OutfitSuggestion(ctx context.Context, items []wardrobe.Item, history []llm.Message, message string) (*advisor.OutfitSuggestion, json.RawMessage, error)
}

type AccessChecker interface {
	CheckAccess(ctx context.Context, person *people.Person, feature entitlement.Feature) (entitlement.Decision, error)
}

// everything the stylist handlers need
type Deps struct {
	People  PersonFinder
	Items   ItemLister
	Advisor OutfitAdvisor
	Access  AccessChecker
}
