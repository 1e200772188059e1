// Package gencache stores AI-generated payloads keyed by (person, subject,
// variant), together with the modification timestamp they were generated
// against. Payloads are opaque JSON at this boundary; feature handlers
// unmarshal them into their typed shapes.
package gencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new generation cache repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// retrieves a cached generation. a missing key is not an error: it returns
// (nil, nil) and signals "never generated - must generate"
func (r *Repository) Get(ctx context.Context, key Key) (*Entry, error) {
	entry := Entry{Key: key}

	err := r.db.QueryRow(ctx, queryGetEntry, key.PersonID, key.SubjectID, key.Variant).Scan(
		&entry.Payload,
		&entry.GeneratedAgainst,
		&entry.ClickCount,
		&entry.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read cached generation: %w", err)
	}

	return &entry, nil
}

// upserts a generation. concurrent racers filling the same key resolve
// last-write-wins; the payload/timestamp pairing is written atomically
func (r *Repository) Put(ctx context.Context, key Key, payload json.RawMessage, generatedAgainst time.Time) (*Entry, error) {
	entry := Entry{Key: key}

	err := r.db.QueryRow(ctx, queryPutEntry,
		key.PersonID, key.SubjectID, key.Variant, payload, generatedAgainst,
	).Scan(
		&entry.Payload,
		&entry.GeneratedAgainst,
		&entry.ClickCount,
		&entry.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to store generation: %w", err)
	}

	return &entry, nil
}

// records a click-through on a cached recommendation set and returns the
// new count
func (r *Repository) RegisterClick(ctx context.Context, key Key) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, queryRegisterClick, key.PersonID, key.SubjectID, key.Variant).Scan(&count)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to register click: %w", err)
	}

	return count, nil
}
