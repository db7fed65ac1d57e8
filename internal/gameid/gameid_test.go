package gameid

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	id := Generate()
	assert.Len(t, id, 26)
	assert.NoError(t, Validate(id))
}

func TestGeneratorUsesClock(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	start := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	clock.Set(start)

	gen := NewGenerator(clock, rand.New(rand.NewSource(1)))
	id := gen.Generate()

	got, err := Time(id)
	require.NoError(t, err)
	assert.True(t, start.Equal(got), "want %s, got %s", start, got)
}

func TestGeneratorIsMonotonic(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, rand.New(rand.NewSource(1)))

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = gen.Generate()
		if i%10 == 9 {
			clock.Advance(time.Millisecond)
		}
	}
	assert.True(t, slices.IsSorted(ids))
	assert.Len(t, slices.Compact(slices.Clone(ids)), len(ids), "IDs are unique")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01ARZ3NDEKTSV4RRFFQ69G5FAV", false},
		{"too short", "01ARZ3NDEK", true},
		{"too long", "01ARZ3NDEKTSV4RRFFQ69G5FAVX", true},
		{"bad character", "01ARZ3NDEKTSV4RRFFQ69G5FAU", true},
		{"overflow", "81ARZ3NDEKTSV4RRFFQ69G5FAV", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	_, err := Time("nope")
	assert.Error(t, err)
}
