package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
)

var now = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

// builds an entry of the given age whose generation snapshot matches its
// update time
func entryAged(age time.Duration, clicks int) *gencache.Entry {
	generated := now.Add(-age)
	return &gencache.Entry{
		GeneratedAgainst: generated,
		UpdatedAt:        generated,
		ClickCount:       clicks,
	}
}

func TestAllClicked(t *testing.T) {
	tests := []struct {
		name   string
		clicks int
		count  int
		want   bool
	}{
		{"none clicked", 0, 3, false},
		{"some clicked", 2, 3, false},
		{"all clicked", 3, 3, true},
		{"clicks beyond count", 5, 3, true},
		{"empty set is never all clicked", 0, 0, false},
		{"empty set with stray clicks", 3, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllClicked(tt.clicks, tt.count))
		})
	}
}

func TestShouldRegenerate_MissingEntry(t *testing.T) {
	unchanged := now.Add(-30 * 24 * time.Hour)

	assert.True(t, ShouldRegenerate(nil, 0, unchanged, now))
}

func TestShouldRegenerate_FreshUnclickedServesCache(t *testing.T) {
	// 2 days old, wardrobe unchanged since generation, 0 of 3 clicked
	entry := entryAged(48*time.Hour, 0)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.False(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_AllClickedPastCooldown(t *testing.T) {
	// 2 days old, wardrobe unchanged, 3 of 3 clicked: the cooldown has
	// elapsed, so engagement forces a fresh set
	entry := entryAged(48*time.Hour, 3)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.True(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_AllClickedWithinCooldown(t *testing.T) {
	// clicked through everything within hours: still serve cache
	entry := entryAged(6*time.Hour, 3)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.False(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_StaleAllClickedWithinCooldown(t *testing.T) {
	// wardrobe changed after generation, everything clicked, but the set
	// is younger than the cooldown: serve cache to absorb click spam
	entry := entryAged(6*time.Hour, 3)
	changedAfter := entry.GeneratedAgainst.Add(time.Hour)

	assert.False(t, ShouldRegenerate(entry, 3, changedAfter, now))
}

func TestShouldRegenerate_StaleUnclicked(t *testing.T) {
	// wardrobe changed after generation and the user hasn't engaged:
	// normal staleness path, regenerate
	entry := entryAged(6*time.Hour, 0)
	changedAfter := entry.GeneratedAgainst.Add(time.Hour)

	assert.True(t, ShouldRegenerate(entry, 3, changedAfter, now))
}

func TestShouldRegenerate_ExceedsMaxAge(t *testing.T) {
	// 10 days old, wardrobe unchanged, 0 of 3 clicked: too old either way
	entry := entryAged(10*24*time.Hour, 0)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.True(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_AllClickedAndAncient(t *testing.T) {
	// the all-clicked fast path and the too-old slow path agree
	entry := entryAged(10*24*time.Hour, 3)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.True(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_CooldownBoundary(t *testing.T) {
	// exactly at the cooldown boundary the regeneration is allowed
	entry := entryAged(ClickCooldown, 3)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.True(t, ShouldRegenerate(entry, 3, unchanged, now))
}

func TestShouldRegenerate_EmptySetNeverChurns(t *testing.T) {
	// zero recommendations, young cache: serve the empty set rather than
	// regenerating on every request
	entry := entryAged(48*time.Hour, 0)
	unchanged := entry.GeneratedAgainst.Add(-time.Hour)

	assert.False(t, ShouldRegenerate(entry, 0, unchanged, now))
}
