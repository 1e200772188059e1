package gencache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Valid(t *testing.T) {
	t0 := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		generatedAgainst time.Time
		modifiedAt       time.Time
		want             bool
	}{
		{
			name:             "generated after last modification",
			generatedAgainst: t0.Add(time.Hour),
			modifiedAt:       t0,
			want:             true,
		},
		{
			name:             "generated exactly at last modification",
			generatedAgainst: t0,
			modifiedAt:       t0,
			want:             true,
		},
		{
			name:             "dependency modified after generation",
			generatedAgainst: t0,
			modifiedAt:       t0.Add(time.Second),
			want:             false,
		},
		{
			name:             "dependency modified much later",
			generatedAgainst: t0,
			modifiedAt:       t0.Add(30 * 24 * time.Hour),
			want:             false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &Entry{GeneratedAgainst: tt.generatedAgainst}
			assert.Equal(t, tt.want, entry.Valid(tt.modifiedAt))
		})
	}
}

func TestEntry_Age(t *testing.T) {
	updated := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	entry := &Entry{UpdatedAt: updated}

	assert.Equal(t, 48*time.Hour, entry.Age(updated.Add(48*time.Hour)))
}
