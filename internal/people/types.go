package people

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles person database operations
type Repository struct {
	db *pgxpool.Pool
}

// subscription tiers
const (
	TierFree = "free"
	TierPro  = "pro"
)

// subscription statuses (mirrors what the billing provider reports)
const (
	StatusActive   = "active"
	StatusCanceled = "canceled"
	StatusPastDue  = "past_due"
	StatusInactive = "inactive"
)

// represents an authenticated user with their subscription state, usage
// counters and per-collection modification clocks
type Person struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Provider   string `json:"provider"`
	ProviderID string `json:"-"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`

	SubscriptionTier    string     `json:"subscription_tier"`
	SubscriptionStatus  string     `json:"subscription_status"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`

	// ShoeCareUsage is only meaningful relative to UsageResetDate: once the
	// calendar month rolls over the counter is logically zero regardless of
	// the stored value (lazy reset, see the quota package)
	ShoeCareUsage  int       `json:"-"`
	UsageResetDate time.Time `json:"-"`

	// modification clocks, bumped in the same transaction as every mutation
	// of the corresponding collection
	WardrobeLastModified time.Time `json:"-"`
	SuppliesLastModified time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// reports whether the person has a paid subscription in good standing
func (p *Person) HasActiveSubscription() bool {
	return p.SubscriptionTier == TierPro && p.SubscriptionStatus == StatusActive
}

// contains data for updating a person's profile
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
