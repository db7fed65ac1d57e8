package randutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIsReproducible(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	t.Parallel()
	now := time.Unix(0, 12345)
	assert.Equal(t, int64(7), Seed(7, now))
	assert.Equal(t, int64(12345), Seed(0, now))
	assert.Equal(t, int64(1), Seed(0, time.Unix(0, 0)))
}
