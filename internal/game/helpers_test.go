package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/pokerverse/internal/randutil"
	"github.com/lox/pokerverse/poker"
)

func newTestGame(t *testing.T, players int, opts ...Option) *Multiverse {
	t.Helper()
	names := []string{"Alice", "Bob", "Charlie", "Dana", "Eve", "Frank"}[:players]
	m, err := New(names, append([]Option{WithSource(randutil.NewSource(42))}, opts...)...)
	require.NoError(t, err)
	return m
}

// rig replaces the latest state of the hand in play on timeline tl with the
// given hole cards and draw stack.
func rig(t *testing.T, m *Multiverse, tl int, deck string, hands ...string) {
	t.Helper()
	b := m.Timelines[tl].Current()
	seed := b.Latest().clone()
	for i, h := range hands {
		seed.Players[i].Hand = poker.MustParseCards(h)
	}
	seed.Deck = poker.MustParseCards(deck)
	b.replace(b.Len()-1, seed)
}

// playTurn skips idle boards then applies act to every board the active
// player still owes an action, which advances the global turn by one.
func playTurn(t *testing.T, m *Multiverse, act func(tl int) error) {
	t.Helper()
	g := m.GlobalTurn()
	m.AdvanceIdle()
	for _, ref := range m.Awaiting() {
		require.NoError(t, act(ref.Timeline), "timeline %d at turn %d", ref.Timeline, g)
	}
	require.Equal(t, g+1, m.GlobalTurn())
}

func checkOrCall(m *Multiverse) func(int) error {
	return func(tl int) error {
		cur, err := m.CurrentTurn(tl)
		if err != nil {
			return err
		}
		if cur.BetAmount == 0 {
			return m.Check(tl)
		}
		return m.Call(tl)
	}
}

func minBoardDepth(m *Multiverse) int {
	depth := -1
	for _, tl := range m.Timelines {
		for _, b := range tl.Boards {
			if depth < 0 || b.Len()-1 < depth {
				depth = b.Len() - 1
			}
		}
	}
	return depth
}

func totalChips(m *Multiverse) int {
	total := 0
	for _, p := range m.Players {
		total += p.Chips
	}
	return total
}
