package shopping

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/logger"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/throttle"
)

// RecommendationsHandler returns the person's shopping recommendation set,
// regenerating it only when the throttle says the cached set has run its
// course. the feature is open to every tier; the throttle is what keeps
// model spend bounded.
func RecommendationsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		ctx := c.Request.Context()

		person, err := deps.People.FindByID(ctx, personID)
		if err != nil {
			errors.NotFound(c, "person")
			return
		}

		// recommendations are a free-tier upsell surface; pro subscribers
		// get the stylist instead
		if person.HasActiveSubscription() {
			c.JSON(http.StatusOK, Response{Items: []advisor.RecommendedItem{}})
			return
		}

		items, err := deps.Items.ListActive(ctx, personID, promptItemLimit)
		if err != nil {
			errors.InternalError(c, "failed to list wardrobe", err)
			return
		}

		// too few items to say anything useful about gaps; don't touch the
		// cache or the model
		if len(items) < throttle.MinWardrobeSize {
			c.JSON(http.StatusOK, Response{
				Items:  []advisor.RecommendedItem{},
				Reason: "add a few more wardrobe items to unlock recommendations",
			})
			return
		}

		key := gencache.Key{PersonID: personID, Variant: cacheVariant}

		entry, err := deps.Cache.Get(ctx, key)
		if err != nil {
			errors.InternalError(c, "failed to read cache", err)
			return
		}

		cached := decodeCached(entry)

		if !throttle.ShouldRegenerate(entry, recommendationCount(cached), person.WardrobeLastModified, deps.now()) {
			c.JSON(http.StatusOK, Response{Items: cached.Items, Cached: true})
			return
		}

		recommendations, raw, err := deps.Advisor.ShoppingRecommendations(ctx, items)
		if err != nil {
			// a stale set beats an error page; regeneration retries next time
			if entry != nil {
				logger.ErrorErr(err, "recommendation refresh failed, serving stale set",
					"person_id", personID,
				)

				c.JSON(http.StatusOK, Response{Items: cached.Items, Cached: true})
				return
			}

			errors.AIUnavailable(c, err)
			return
		}

		// the upsert also zeroes the click counter for the new set
		if _, err := deps.Cache.Put(ctx, key, raw, person.WardrobeLastModified); err != nil {
			logger.ErrorErr(err, "failed to cache recommendations",
				"person_id", personID,
			)
		}

		c.JSON(http.StatusOK, Response{Items: recommendations.Items, Cached: false})
	}
}

// ClickHandler records that the person clicked through one recommendation
func ClickHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		key := gencache.Key{PersonID: personID, Variant: cacheVariant}

		count, err := deps.Cache.RegisterClick(c.Request.Context(), key)
		if err != nil {
			errors.InternalError(c, "failed to register click", err)
			return
		}

		c.JSON(http.StatusOK, ClickResponse{ClickCount: count})
	}
}

// decodes the cached payload; a nil entry or an undecodable payload yields
// an empty set, which the throttle treats as never all-clicked
func decodeCached(entry *gencache.Entry) advisor.ShoppingRecommendations {
	var cached advisor.ShoppingRecommendations

	if entry == nil {
		return cached
	}

	if err := json.Unmarshal(entry.Payload, &cached); err != nil {
		logger.Warn("undecodable cached recommendation payload",
			"person_id", entry.Key.PersonID,
		)
	}

	if cached.Items == nil {
		cached.Items = []advisor.RecommendedItem{}
	}

	return cached
}

func recommendationCount(cached advisor.ShoppingRecommendations) int {
	return len(cached.Items)
}
