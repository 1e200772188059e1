package entitlement

// identifies a gated AI feature
type Feature string

const (
	// all-or-nothing pro feature
	FeatureStylistChat Feature = "stylist_chat"

	// quota-limited for free tier
	FeatureCareInstructions Feature = "care_instructions"

	// free-tier upsell feature, never quota-counted
	FeatureShoppingRecommendations Feature = "shopping_recommendations"
)

// how many care-instruction generations a free-tier person gets per month
const FreeCareInstructionLimit = 3

// reports how much of a monthly quota has been consumed
type UsageInfo struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}

// the outcome of an access check. Reason and Usage are only populated on
// denial; Usage only for quota features
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  string     `json:"reason,omitempty"`
	Usage   *UsageInfo `json:"usage,omitempty"`
}
