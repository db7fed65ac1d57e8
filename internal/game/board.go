package game

import (
	"slices"

	"github.com/lox/pokerverse/poker"
)

// Board is one hand of poker: an append-only log of Turn snapshots indexed by
// global turn. A Board is never empty.
type Board struct {
	turns []*Turn

	// ShowPresent is a viewing preference only; it has no effect on play.
	ShowPresent bool
}

// NewBoard deals a new hand from deck. The seed turn is repeated depth times so
// that a hand starting mid-game lines up with the global clock.
func NewBoard(deck []poker.Card, numPlayers, ante, depth int) *Board {
	seed := firstRound(deck, numPlayers, ante)
	turns := make([]*Turn, max(depth, 1))
	for i := range turns {
		turns[i] = seed
	}
	return &Board{turns: turns}
}

// Intersect returns a copy of board holding only its first turn+1 snapshots:
// the board exactly as it stood at the given global turn.
func Intersect(board *Board, turn int) *Board {
	n := min(turn+1, len(board.turns))
	return &Board{
		turns:       slices.Clone(board.turns[:n]),
		ShowPresent: board.ShowPresent,
	}
}

// Len returns the number of turns in the log.
func (b *Board) Len() int {
	return len(b.turns)
}

// Turn returns the snapshot at global turn i.
func (b *Board) Turn(i int) *Turn {
	return b.turns[i]
}

// Latest returns the most recent snapshot.
func (b *Board) Latest() *Turn {
	return b.turns[len(b.turns)-1]
}

// At returns the snapshot at turn limit, or the latest snapshot when the log
// is shorter than limit.
func (b *Board) At(limit int) *Turn {
	if limit < 0 || limit >= len(b.turns) {
		return b.Latest()
	}
	return b.turns[limit]
}

// IsPast reports whether the board's log already extends beyond turnLimit, in
// which case writing at turnLimit would rewrite resolved history.
func (b *Board) IsPast(turnLimit int) bool {
	return len(b.turns) > turnLimit+1
}

func (b *Board) append(t *Turn) {
	b.turns = append(b.turns, t)
}

// replace swaps the snapshot at index i. The previous snapshot may still be
// shared by other boards and is left untouched.
func (b *Board) replace(i int, t *Turn) {
	b.turns[i] = t
}

func (b *Board) clone() *Board {
	return &Board{
		turns:       slices.Clone(b.turns),
		ShowPresent: b.ShowPresent,
	}
}
