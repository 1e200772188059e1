package billing

import (
	"context"
	"time"
)

// the header carrying the hex HMAC-SHA256 of the raw request body
const signatureHeader = "X-Billing-Signature"

// webhook event types we act on
const (
	EventSubscriptionUpdated  = "subscription.updated"
	EventSubscriptionCanceled = "subscription.canceled"
)

// one event pushed by the billing provider
type WebhookEvent struct {
	Type         string     `json:"type" binding:"required"`
	PersonID     string     `json:"person_id" binding:"required"`
	Tier         string     `json:"tier"`
	Status       string     `json:"status"`
	PeriodEndsAt *time.Time `json:"period_ends_at"`
}

// the single write path for subscription fields. satisfied by
// *people.Repository
type SubscriptionUpdater interface {
	UpdateSubscription(ctx context.Context, personID, tier, status string, endDate *time.Time) error
}
