// Package audit verifies the structural invariants of a Multiverse. It only
// reads, so it can run against a live game between actions or against a
// snapshot in the background.
package audit

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerverse/internal/game"
)

// Violation locates a broken invariant.
type Violation struct {
	Timeline int
	Board    int
	Turn     int
	Reason   string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("timeline %d board %d turn %d: %s", v.Timeline, v.Board, v.Turn, v.Reason)
}

// Check inspects every timeline concurrently and returns the violations it
// finds joined into one error, or nil when the Multiverse is consistent.
func Check(ctx context.Context, m *game.Multiverse) error {
	if len(m.Timelines) == 0 {
		return errors.New("multiverse has no timelines")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	globalTurn := m.GlobalTurn()
	found := make([][]error, len(m.Timelines))
	for i, tl := range m.Timelines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found[i] = checkTimeline(i, tl, len(m.Players), globalTurn)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error
	for _, f := range found {
		errs = append(errs, f...)
	}
	return errors.Join(errs...)
}

func checkTimeline(idx int, tl *game.Timeline, players, globalTurn int) []error {
	var errs []error
	fail := func(board, turn int, format string, args ...any) {
		errs = append(errs, &Violation{Timeline: idx, Board: board, Turn: turn, Reason: fmt.Sprintf(format, args...)})
	}

	if tl.Parent < 0 || (idx > 0 && tl.Parent >= idx) {
		fail(0, 0, "parent %d is not an earlier timeline", tl.Parent)
	}
	if len(tl.Boards) == 0 {
		fail(0, 0, "timeline has no boards")
	}

	for b, board := range tl.Boards {
		if board.Len() == 0 {
			fail(b, 0, "board is empty")
			continue
		}
		if board.Len() < globalTurn+1 {
			fail(b, board.Len()-1, "board is behind the global turn %d", globalTurn)
		}

		prev := board.Turn(0)
		for i := range board.Len() {
			cur := board.Turn(i)
			if len(cur.Players) != players {
				fail(b, i, "%d player states for %d players", len(cur.Players), players)
				continue
			}
			if cur.CompletedStage < prev.CompletedStage {
				fail(b, i, "stage went back from %s to %s", prev.CompletedStage, cur.CompletedStage)
			}
			if over := cur.IsOver(); over != (cur.Result != nil) {
				fail(b, i, "stage %s does not match showdown result", cur.CompletedStage)
			}
			for p, ps := range cur.Players {
				if !cur.IsOver() && len(ps.Bets) > int(cur.CompletedStage)+1 {
					fail(b, i, "player %d has %d bet slots at stage %s", p, len(ps.Bets), cur.CompletedStage)
				}
				if len(prev.Players) != players {
					continue
				}
				was := prev.Players[p]
				if was.Folded && !ps.Folded {
					fail(b, i, "player %d returned after folding", p)
				}
				if was.Folded && !slices.Equal(was.Bets, ps.Bets) {
					fail(b, i, "player %d changed bets after folding", p)
				}
			}
			prev = cur
		}

		if !tl.IsCurrent(b) && !board.Latest().IsOver() {
			fail(b, board.Len()-1, "an earlier board never reached showdown")
		}
	}
	return errs
}
