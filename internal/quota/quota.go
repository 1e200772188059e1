// Package quota tracks how many times rate-limited AI features have been
// invoked by a free-tier person in the current calendar month.
package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
)

// persists usage counter changes. satisfied by *people.Repository
type Store interface {
	ResetUsage(ctx context.Context, personID string, resetAt time.Time) error
	IncrementUsage(ctx context.Context, personID string) (int, error)
}

// reads and maintains the monthly shoe-care usage counter
type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// creates a tracker with an injected clock, for tests
func NewTrackerWithClock(store Store, now func() time.Time) *Tracker {
	return &Tracker{store: store, now: now}
}

// reports whether two timestamps fall in the same billing period. the
// rollover rule is calendar month, not rolling 30 days
func SameBillingPeriod(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// returns the person's usage for the current month. if the stored reset
// date belongs to an earlier billing period the counter is reset to zero
// and the reset persisted before returning (lazy rollover). safe to call
// repeatedly: the reset is idempotent within a month, and concurrent
// racers resolve last-writer-wins
func (t *Tracker) CurrentUsage(ctx context.Context, person *people.Person) (int, error) {
	now := t.now()

	if SameBillingPeriod(person.UsageResetDate, now) {
		return person.ShoeCareUsage, nil
	}

	if err := t.store.ResetUsage(ctx, person.ID, now); err != nil {
		return 0, fmt.Errorf("failed to reset usage: %w", err)
	}

	person.ShoeCareUsage = 0
	person.UsageResetDate = now

	return 0, nil
}

// records one paid-feature invocation. only called after a generation has
// actually succeeded, never speculatively, and never for pro tier
func (t *Tracker) Increment(ctx context.Context, person *people.Person) error {
	usage, err := t.store.IncrementUsage(ctx, person.ID)
	if err != nil {
		return fmt.Errorf("failed to increment usage: %w", err)
	}

	person.ShoeCareUsage = usage

	return nil
}
