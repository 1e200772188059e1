// Package throttle decides whether a cached shopping recommendation set
// should be recomputed. It prevents wasteful regeneration while the
// wardrobe is unchanged and blocks click-spamming from forcing
// back-to-back AI calls.
package throttle

import (
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
)

const (
	// a fully clicked-through set is not regenerated again within this
	// window, so rapid click-throughs can't trigger back-to-back AI calls
	ClickCooldown = 24 * time.Hour

	// past this age the set is recomputed even if nothing changed, so
	// recommendations for a never-engaging user don't fossilize
	MaxCacheAge = 7 * 24 * time.Hour

	// below this many active items the feature produces no recommendations
	// at all, without consulting cache or throttle
	MinWardrobeSize = 5
)

// reports whether every stored recommendation has been clicked through.
// an empty set is never "all clicked": a thin wardrobe can legitimately
// produce zero recommendations, and that must not regenerate every request
func AllClicked(clickCount, recommendationCount int) bool {
	return recommendationCount > 0 && clickCount >= recommendationCount
}

// decides whether the cached set should be recomputed. rule order, highest
// precedence first:
//
//  1. no cache entry: generate
//  2. age >= MaxCacheAge: regenerate (wins over every cooldown)
//  3. stale wardrobe and not all clicked: regenerate
//  4. all clicked and age >= ClickCooldown: regenerate
//
// everything else serves the cache, including a stale-but-all-clicked set
// younger than the cooldown.
func ShouldRegenerate(entry *gencache.Entry, recommendationCount int, wardrobeModified, now time.Time) bool {
	if entry == nil {
		return true
	}

	age := entry.Age(now)

	if age >= MaxCacheAge {
		return true
	}

	allClicked := AllClicked(entry.ClickCount, recommendationCount)
	stale := !entry.Valid(wardrobeModified)

	if stale && !allClicked {
		return true
	}

	if allClicked && age >= ClickCooldown {
		return true
	}

	return false
}
