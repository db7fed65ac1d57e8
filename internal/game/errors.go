package game

import (
	"errors"
	"fmt"
)

// Rule violations. Each leaves the Multiverse unmodified.
var (
	ErrPlayerCount       = errors.New("a game needs between 2 and 6 players")
	ErrBetTooSmall       = errors.New("bet below the table minimum")
	ErrCannotCheck       = errors.New("cannot check while a bet is open")
	ErrNothingToCall     = errors.New("no open bet to call")
	ErrFolded            = errors.New("active player has folded this hand")
	ErrAlreadyActed      = errors.New("board has already advanced this turn")
	ErrHandOver          = errors.New("hand has reached showdown")
	ErrLastPlayer        = errors.New("last player in the hand cannot fold")
	ErrMustAct           = errors.New("active player must act on this board")
	ErrSameBoard         = errors.New("source and destination are the same board")
	ErrNotYourCard       = errors.New("only the active player's cards or community cards can be moved")
	ErrSourceNotAdvanced = errors.New("source board has no state after the present")
)

// IndexError reports an out-of-range timeline, board, player or card index.
// It is a caller bug, not a game outcome.
type IndexError struct {
	Kind  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

func checkIndex(kind string, idx, n int) error {
	if idx < 0 || idx >= n {
		return &IndexError{Kind: kind, Index: idx, Len: n}
	}
	return nil
}
