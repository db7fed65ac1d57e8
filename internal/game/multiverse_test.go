package game

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerverse/poker"
)

func TestNewValidatesRoster(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"Solo"})
	assert.ErrorIs(t, err, ErrPlayerCount)

	_, err = New([]string{"1", "2", "3", "4", "5", "6", "7"})
	assert.ErrorIs(t, err, ErrPlayerCount)

	m, err := New([]string{"Alice", "  ", "Charlie"})
	require.NoError(t, err)
	assert.Equal(t, "PokerKing", m.Players[1].Name)
	for _, p := range m.Players {
		assert.Equal(t, DefaultStartingChips, p.Chips)
	}
}

func TestGenesis(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 3)

	require.Len(t, m.Timelines, 2)
	assert.Equal(t, 0, m.GlobalTurn())
	assert.Equal(t, 0, m.ActivePlayer())

	for _, tl := range m.Timelines {
		assert.Equal(t, 0, tl.Parent)
		assert.Equal(t, 0, tl.StartingTime)
		require.Len(t, tl.Boards, 1)

		b := tl.Current()
		require.Equal(t, 1, b.Len())
		turn := b.Latest()
		assert.Equal(t, StagePreflop, turn.CompletedStage)
		assert.Empty(t, turn.OpenCards)
		assert.Len(t, turn.Deck, 52-3*holeCards)
		for _, p := range turn.Players {
			assert.Len(t, p.Hand, holeCards)
			assert.Equal(t, DefaultAnte, p.Commitment())
		}
		assert.ElementsMatch(t, poker.FreshDeck(), turn.cards())
	}

	assert.NotEqual(t, m.Timelines[0].Current().Latest().Deck, m.Timelines[1].Current().Latest().Deck,
		"genesis timelines are dealt from independent shuffles")
}

func TestGlobalTurnTracksShallowestBoard(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	require.NoError(t, m.Bet(0, 2))
	assert.Equal(t, 0, m.GlobalTurn(), "timeline 1 has not moved yet")
	assert.Equal(t, 0, m.ActivePlayer())

	require.NoError(t, m.Check(1))
	assert.Equal(t, 1, m.GlobalTurn())
	assert.Equal(t, 1, m.ActivePlayer())
	assert.Equal(t, minBoardDepth(m), m.GlobalTurn())
}

func TestBeginTurnHandoff(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	assert.True(t, m.TurnPending())
	m.BeginTurn()
	assert.False(t, m.TurnPending())

	require.NoError(t, m.Check(0))
	require.NoError(t, m.Check(1))
	assert.True(t, m.TurnPending(), "the turn passed to the next player")
}

func TestCurrentTurn(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	require.NoError(t, m.Bet(0, 3))
	cur, err := m.CurrentTurn(0)
	require.NoError(t, err)
	assert.Equal(t, 0, cur.BetAmount, "current turn is read at the global turn")

	_, err = m.CurrentTurn(5)
	var idxErr *IndexError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, "timeline", idxErr.Kind)
}

func TestSpawnTimelineCopiesPrefix(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	require.NoError(t, m.Bet(0, 2))
	parent := m.Timelines[0].Boards[0]
	require.True(t, parent.IsPast(m.GlobalTurn()))
	before := parent.clone()

	idx, start, err := m.SpawnTimeline(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, 0, start)

	spawned := m.Timelines[idx]
	assert.Equal(t, 0, spawned.Parent)
	require.Len(t, spawned.Boards, 1)
	seed := spawned.Boards[0]
	require.Equal(t, m.GlobalTurn()+1, seed.Len())
	for i := range seed.Len() {
		assert.Same(t, parent.Turn(i), seed.Turn(i))
	}
	assert.Equal(t, before, parent, "parent board is unmodified")

	_, _, err = m.SpawnTimeline(0, 3)
	var idxErr *IndexError
	assert.ErrorAs(t, err, &idxErr)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)
	snapshot := m.Clone()

	require.NoError(t, m.Bet(0, 2))
	assert.Equal(t, 1, snapshot.Timelines[0].Current().Len())
	assert.Equal(t, 2, m.Timelines[0].Current().Len())
	assert.Same(t, snapshot.Timelines[0].Current().Turn(0), m.Timelines[0].Current().Turn(0))
}

func TestCloneDealsFromItsOwnSource(t *testing.T) {
	t.Parallel()
	reference := newTestGame(t, 2)
	require.NoError(t, reference.Fold(0))
	want := reference.Timelines[0].Current().Latest()

	m := newTestGame(t, 2)
	clone := m.Clone()
	require.NoError(t, clone.Fold(1))
	require.NoError(t, clone.Fold(0))
	require.NoError(t, m.Fold(0))

	got := m.Timelines[0].Current().Latest()
	assert.Equal(t, want.Players, got.Players)
	assert.Equal(t, want.Deck, got.Deck)
	assert.NotEqual(t, want.Deck, clone.Timelines[0].Current().Latest().Deck, "second shuffle on the clone")
}

func TestClonesShuffleConcurrently(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)
	clone := m.Clone()

	var wg sync.WaitGroup
	for _, g := range []*Multiverse{m, clone} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Fold(0))
		}()
	}
	wg.Wait()

	assert.Equal(t, m.Timelines[0].Current().Latest().Deck, clone.Timelines[0].Current().Latest().Deck)
}

func TestToggleView(t *testing.T) {
	t.Parallel()
	m := newTestGame(t, 2)

	require.NoError(t, m.Apply(ToggleAction{Timeline: 1, Board: 0}))
	assert.True(t, m.Timelines[1].Boards[0].ShowPresent)
	assert.Error(t, m.ToggleView(1, 4))
}
