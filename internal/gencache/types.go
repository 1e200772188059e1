package gencache

import (
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles cached AI generation database operations
type Repository struct {
	db *pgxpool.Pool
}

// identifies one cached generation. SubjectID is empty for per-person
// entries (e.g. shopping recommendations); for care instructions it is the
// wardrobe item ID and Variant the care type
type Key struct {
	PersonID  string
	SubjectID string
	Variant   string
}

// one stored AI result together with the modification timestamp of the
// input data it was generated against
type Entry struct {
	Key              Key
	Payload          json.RawMessage
	GeneratedAgainst time.Time
	ClickCount       int
	UpdatedAt        time.Time
}

// reports whether the entry is still fresh relative to the dependency's
// modification clock. pure comparison, no I/O
func (e *Entry) Valid(modifiedAt time.Time) bool {
	return !e.GeneratedAgainst.Before(modifiedAt)
}

// returns the entry's age relative to now
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.UpdatedAt)
}
