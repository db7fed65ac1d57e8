// Package gameid mints sortable session identifiers.
package gameid

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/oklog/ulid/v2"
)

// Generator mints ULIDs stamped with its clock's time. IDs from one
// generator sort in creation order even within the same millisecond.
type Generator struct {
	clock quartz.Clock

	mu      sync.Mutex
	entropy io.Reader
}

// NewGenerator creates a generator. A nil entropy source uses the ulid
// package's default; tests pass a seeded reader for stable IDs.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = ulid.DefaultEntropy()
	} else {
		entropy = ulid.Monotonic(entropy, 0)
	}
	return &Generator{clock: clock, entropy: entropy}
}

// Generate returns a new 26 character ID.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
}

// Generate returns a new ID stamped with the wall clock.
func Generate() string {
	return ulid.Make().String()
}

// Validate checks id is a well formed ID.
func Validate(id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	return nil
}

// Time returns the creation time encoded in id, to the millisecond.
func Time(id string) (time.Time, error) {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid game ID %q: %w", id, err)
	}
	return ulid.Time(u.Time()), nil
}
