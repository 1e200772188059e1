package care

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/advisor"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/logger"
)

// InstructionsHandler returns care instructions for one wardrobe item.
//
// order matters here: the cache is consulted BEFORE the entitlement check,
// so a free-tier person who exhausted their quota can still reread guides
// they already generated. only a cache miss (or a shelf change since
// generation) walks the gated path, and the quota counter moves only after
// the model call has actually succeeded.
func InstructionsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		itemID, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !isValidCareType(req.CareType) {
			errors.BadRequest(c, "unsupported care type", nil)
			return
		}

		ctx := c.Request.Context()

		person, err := deps.People.FindByID(ctx, personID)
		if err != nil {
			errors.NotFound(c, "person")
			return
		}

		item, err := deps.Items.Get(ctx, itemID, personID)
		if err != nil {
			errors.NotFound(c, "item")
			return
		}

		key := gencache.Key{PersonID: personID, SubjectID: itemID, Variant: req.CareType}

		entry, err := deps.Cache.Get(ctx, key)
		if err != nil {
			errors.InternalError(c, "failed to read cache", err)
			return
		}

		// instructions go stale when the supply shelf changes, not the
		// wardrobe: a new conditioner should show up in the steps
		if entry != nil && entry.Valid(person.SuppliesLastModified) {
			serveCached(c, entry)
			return
		}

		decision, err := deps.Access.CheckAccess(ctx, person, entitlement.FeatureCareInstructions)
		if err != nil {
			errors.InternalError(c, "failed to check access", err)
			return
		}

		if !decision.Allowed {
			errors.NotEntitled(c, decision.Reason, usageInfo(decision.Usage))
			return
		}

		shelf, err := deps.Shelf.List(ctx, personID)
		if err != nil {
			errors.InternalError(c, "failed to list supplies", err)
			return
		}

		instructions, raw, err := deps.Advisor.CareInstructions(ctx, *item, shelf, req.CareType)
		if err != nil {
			// nothing is cached and no quota is consumed for a failed call
			errors.AIUnavailable(c, err)
			return
		}

		if _, err := deps.Cache.Put(ctx, key, raw, person.SuppliesLastModified); err != nil {
			// the generation succeeded; losing the cache write only costs a
			// future regeneration
			logger.ErrorErr(err, "failed to cache care instructions",
				"person_id", personID,
				"item_id", itemID,
			)
		}

		usage := decision.Usage

		if !person.HasActiveSubscription() {
			if err := deps.Quota.Increment(ctx, person); err != nil {
				logger.ErrorErr(err, "failed to increment care usage",
					"person_id", personID,
				)
			} else if usage != nil {
				usage = &entitlement.UsageInfo{Used: person.ShoeCareUsage, Limit: usage.Limit}
			}
		}

		c.JSON(http.StatusOK, Response{
			Instructions: instructions,
			Cached:       false,
			Usage:        usage,
		})
	}
}

func serveCached(c *gin.Context, entry *gencache.Entry) {
	var instructions advisor.CareInstructions

	if err := json.Unmarshal(entry.Payload, &instructions); err != nil {
		errors.InternalError(c, "failed to decode cached instructions", err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Instructions: &instructions,
		Cached:       true,
	})
}

func usageInfo(usage *entitlement.UsageInfo) *errors.UsageInfo {
	if usage == nil {
		return nil
	}

	return &errors.UsageInfo{Used: usage.Used, Limit: usage.Limit}
}
