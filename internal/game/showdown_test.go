package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerverse/poker"
)

func TestShowdownSplitsPot(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 3)

	// Both timelines play the same rigged hand: two pairs of aces tie and the
	// odd pot cannot be split evenly.
	for tl := range m.Timelines {
		rig(t, m, tl, "2d3h7s8dJc", "AsAh", "AdAc", "4c5c")
	}
	for range 12 {
		playTurn(t, m, checkOrCall(m))
	}

	for _, tl := range m.Timelines {
		done := tl.Boards[0].Latest()
		require.NotNil(t, done.Result)
		assert.Equal(t, []int{0, 1}, done.Result.Winners)
		assert.Equal(t, poker.OnePair, done.Result.HandType)
		assert.Equal(t, 3, done.Result.Pot)
		assert.Equal(t, 1, done.Result.Share)
		assert.Equal(t, 1, done.Result.Remainder)
		assert.ElementsMatch(t, poker.MustParseCards("2d3h7s8dJc"), done.OpenCards)
	}

	assert.Equal(t, 100, m.Players[0].Chips)
	assert.Equal(t, 100, m.Players[1].Chips)
	assert.Equal(t, 98, m.Players[2].Chips)
	assert.Equal(t, 3*DefaultStartingChips-2, totalChips(m), "only the remainders leave the table")
}

func TestShowdownPaysCommitments(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2, WithAnte(5))

	require.NoError(t, m.Bet(0, 10))
	require.NoError(t, m.Check(1))
	require.NoError(t, m.Fold(0))

	done := m.Timelines[0].Boards[0].Latest()
	require.NotNil(t, done.Result)
	assert.Equal(t, []int{0}, done.Result.Winners)
	assert.Equal(t, 20, done.Result.Pot)
	assert.Equal(t, 0, done.Result.Remainder)

	assert.Equal(t, 105, m.Players[0].Chips)
	assert.Equal(t, 95, m.Players[1].Chips)
	assert.Equal(t, 2*DefaultStartingChips, totalChips(m))
}

func TestNextHandReusesCards(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	require.NoError(t, m.Fold(0))

	tl := m.Timelines[0]
	require.Len(t, tl.Boards, 2)
	done := tl.Boards[0].Latest()
	seed := tl.Boards[1].Latest()
	assert.ElementsMatch(t, done.cards(), seed.cards())
	assert.Equal(t, tl.Boards[0].Len(), tl.Boards[1].Len())
	for _, p := range seed.Players {
		assert.False(t, p.Folded)
		assert.Empty(t, p.Bets)
		assert.Equal(t, m.Ante(), p.Ante)
	}
}
