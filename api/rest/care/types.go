package care

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// supported care types. the care type is part of the cache key, so a
// cleaning guide and a waterproofing guide for the same item live side by
// side
var careTypes = []string{"cleaning", "polishing", "conditioning", "waterproofing", "storage"}

type Request struct {
	CareType string `json:"care_type" binding:"required"`
}

type Response struct {
	Instructions *advisor.CareInstructions `json:"instructions"`
	Cached       bool                      `json:"cached"`
	Usage        *entitlement.UsageInfo    `json:"usage,omitempty"`
}

// narrow views over the repositories, so handler tests can fake them

type PersonFinder interface {
	FindByID(ctx context.Context, personID string) (*people.Person, error)
}

type ItemGetter interface {
	Get(ctx context.Context, itemID, personID string) (*wardrobe.Item, error)
}

type ShelfLister interface {
	List(ctx context.Context, personID string) ([]supplies.Supply, error)
}

type GenerationCache interface {
	Get(ctx context.Context, key gencache.Key) (*gencache.Entry, error)
	Put(ctx context.Context, key gencache.Key, payload json.RawMessage, generatedAgainst time.Time) (*gencache.Entry, error)
}

type InstructionGenerator interface {
	CareInstructions(ctx context.Context, item wardrobe.Item, shelf []supplies.Supply, careType string) (*advisor.CareInstructions, json.RawMessage, error)
}

type AccessChecker interface {
	CheckAccess(ctx context.Context, person *people.Person, feature entitlement.Feature) (entitlement.Decision, error)
}

type UsageIncrementer interface {
	Increment(ctx context.Context, person *people.Person) error
}

// everything the care handlers need
type Deps struct {
	People  PersonFinder
	Items   ItemGetter
	Shelf   ShelfLister
	Cache   GenerationCache
	Advisor InstructionGenerator
	Access  AccessChecker
	Quota   UsageIncrementer
}

func isValidCareType(careType string) bool {
	return slices.Contains(careTypes, careType)
}
