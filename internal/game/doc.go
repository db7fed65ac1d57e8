// Package game implements the multiverse poker engine.
//
// Play is organised as a branching set of alternate histories. The root type
// is Multiverse, which owns the player roster and every Timeline. A Timeline
// is an append-only sequence of Boards (one Board per hand of poker) and a
// Board is an append-only log of immutable Turn snapshots.
//
// # Basic Usage
//
//	m, err := game.New([]string{"Alice", "Bob"}, game.WithSource(randutil.NewSource(42)))
//	if err != nil {
//	    return err
//	}
//	// Alice acts on both genesis timelines, then the global clock ticks.
//	_ = m.Bet(0, 2)
//	_ = m.Bet(1, 2)
//	fmt.Println(m.GlobalTurn(), m.ActivePlayer()) // 1 1
//
// # Global Clock
//
// GlobalTurn is the minimum depth reached by every Board in every Timeline.
// The active player (GlobalTurn modulo the number of players) must act on,
// or skip, each Board before the clock advances. Boards that cannot be acted
// on (finished hands, hands the player folded) are skipped with Skip or in
// bulk with AdvanceIdle.
//
// # Time Travel
//
// TimeTravel moves a card between any two Boards. Writing into a Board whose
// log already runs past the present would rewrite resolved history, so the
// destination is first forked into a new Timeline with SpawnTimeline.
//
// # Errors
//
// Rule violations are returned as sentinel errors (ErrBetTooSmall, ...) and
// leave the Multiverse untouched. Out-of-range indices are reported as
// *IndexError, which signals a caller bug rather than a game outcome.
package game
