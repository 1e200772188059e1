// Package entitlement is the single gate a feature handler must pass
// before invoking the expensive AI path.
package entitlement

import (
	"context"
	"fmt"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/quota"
)

// decides whether a person may trigger a new AI generation
type Evaluator struct {
	quota     *quota.Tracker
	careLimit int
}

func NewEvaluator(tracker *quota.Tracker) *Evaluator {
	return &Evaluator{
		quota:     tracker,
		careLimit: FreeCareInstructionLimit,
	}
}

// checks whether the person may invoke the feature. never mutates the
// usage counter itself (beyond the tracker's lazy rollover): callers call
// quota.Increment only after a generation actually succeeds, so a failed
// AI call never consumes quota
func (e *Evaluator) CheckAccess(ctx context.Context, person *people.Person, feature Feature) (Decision, error) {
	switch feature {
	case FeatureStylistChat:
		if person.HasActiveSubscription() {
			return Decision{Allowed: true}, nil
		}

		return Decision{
			Allowed: false,
			Reason:  "the AI stylist is a Pro feature - upgrade to chat about your wardrobe",
		}, nil

	case FeatureCareInstructions:
		if person.HasActiveSubscription() {
			return Decision{Allowed: true}, nil
		}

		used, err := e.quota.CurrentUsage(ctx, person)
		if err != nil {
			return Decision{}, err
		}

		if used < e.careLimit {
			return Decision{
				Allowed: true,
				Usage:   &UsageInfo{Used: used, Limit: e.careLimit},
			}, nil
		}

		return Decision{
			Allowed: false,
			Reason: fmt.Sprintf(
				"you've used all %d free care guides this month - upgrade to Pro for unlimited guides",
				e.careLimit),
			Usage: &UsageInfo{Used: used, Limit: e.careLimit},
		}, nil

	case FeatureShoppingRecommendations:
		// recommendations are a free-tier engagement feature; cost control
		// happens in the regeneration throttle, not here
		return Decision{Allowed: true}, nil

	default:
		return Decision{}, fmt.Errorf("unknown feature: %s", feature)
	}
}
