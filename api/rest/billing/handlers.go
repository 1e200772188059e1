package billing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/errors"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/logger"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
)

// WebhookHandler ingests subscription events from the billing provider.
// the payload signature is verified against the shared secret before any
// field is trusted; this endpoint is the only code path that changes a
// person's tier or status.
func WebhookHandler(personRepo SubscriptionUpdater, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			errors.BadRequest(c, "unreadable body", nil)
			return
		}

		if !verifySignature(body, c.GetHeader(signatureHeader), secret) {
			logger.Warn("billing webhook rejected",
				"reason", "bad signature",
				"remote_addr", c.ClientIP(),
			)

			errors.Unauthorized(c, "invalid signature")
			return
		}

		var event WebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			errors.BadRequest(c, "malformed event", err)
			return
		}

		if !errors.IsValidUUID(event.PersonID) {
			errors.BadRequest(c, "invalid person_id", nil)
			return
		}

		tier, status, ok := resolveEvent(event)
		if !ok {
			// unknown event types are acknowledged so the provider stops
			// retrying them
			c.JSON(http.StatusOK, gin.H{"message": "ignored"})
			return
		}

		if err := personRepo.UpdateSubscription(c.Request.Context(), event.PersonID, tier, status, event.PeriodEndsAt); err != nil {
			errors.InternalError(c, "failed to apply subscription change", err)
			return
		}

		logger.Info("subscription updated",
			"person_id", event.PersonID,
			"tier", tier,
			"status", status,
		)

		c.JSON(http.StatusOK, gin.H{"message": "applied"})
	}
}

// maps an event to the tier/status pair to store. cancellation keeps the
// pro tier with a canceled status until the paid period lapses
func resolveEvent(event WebhookEvent) (tier, status string, ok bool) {
	switch event.Type {
	case EventSubscriptionUpdated:
		if event.Tier == "" || event.Status == "" {
			return "", "", false
		}

		return event.Tier, event.Status, true

	case EventSubscriptionCanceled:
		return people.TierPro, people.StatusCanceled, true

	default:
		return "", "", false
	}
}

func verifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
