package stylist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/auth"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/entitlement"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
)

// ChatHandler answers one stylist conversation turn. the feature is
// all-or-nothing pro: there is no quota and no cache, every allowed turn
// goes to the model with the caller-supplied history.
func ChatHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		personID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		ctx := c.Request.Context()

		person, err := deps.People.FindByID(ctx, personID)
		if err != nil {
			errors.NotFound(c, "person")
			return
		}

		decision, err := deps.Access.CheckAccess(ctx, person, entitlement.FeatureStylistChat)
		if err != nil {
			errors.InternalError(c, "failed to check access", err)
			return
		}

		if !decision.Allowed {
			errors.NotEntitled(c, decision.Reason, nil)
			return
		}

		items, err := deps.Items.ListActive(ctx, personID, promptItemLimit)
		if err != nil {
			errors.InternalError(c, "failed to list wardrobe", err)
			return
		}

		suggestion, _, err := deps.Advisor.OutfitSuggestion(ctx, items, req.History, req.Message)
		if err != nil {
			errors.AIUnavailable(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Reply:   suggestion.Reply,
			Outfits: suggestion.Outfits,
		})
	}
}
