package game

import (
	"fmt"
)

// BoardRef addresses a board by timeline and local board index.
type BoardRef struct {
	Timeline int
	Board    int
}

// live returns the hand in play on timeline tl and its state at the present,
// checking that the active player may act on it.
func (m *Multiverse) live(tl int) (*Timeline, *Board, *Turn, error) {
	timeline, err := m.Timeline(tl)
	if err != nil {
		return nil, nil, nil, err
	}

	g := m.GlobalTurn()
	board := timeline.Current()
	if board.IsPast(g) {
		return nil, nil, nil, ErrAlreadyActed
	}
	turn := board.Turn(g)
	if turn.IsOver() {
		return nil, nil, nil, ErrHandOver
	}
	if turn.Players[m.ActivePlayer()].Folded {
		return nil, nil, nil, ErrFolded
	}
	return timeline, board, turn, nil
}

// MinBet returns the smallest amount the active player may bet on timeline tl.
func (m *Multiverse) MinBet(tl int) (int, error) {
	_, _, cur, err := m.live(tl)
	if err != nil {
		return 0, err
	}
	return max(cur.BetAmount, 1), nil
}

// CanBet reports whether Bet(tl, amount) would be accepted.
func (m *Multiverse) CanBet(tl, amount int) bool {
	minBet, err := m.MinBet(tl)
	return err == nil && amount >= minBet
}

// Check passes without betting. It is only legal while no bet is open. Once
// every live player has checked the stage closes with a zero bet each.
func (m *Multiverse) Check(tl int) error {
	timeline, board, cur, err := m.live(tl)
	if err != nil {
		return err
	}
	if cur.BetAmount != 0 {
		return ErrCannotCheck
	}

	next := cur.clone()
	next.NumChecks++
	if next.NumChecks >= next.Remaining() {
		for i, p := range next.Players {
			if !p.Folded {
				next.setBet(i, 0)
			}
		}
	}
	m.commit(timeline, board, next, "check", 0)
	return nil
}

// Bet records amount as the active player's bet for the current stage. The
// amount must match the table bet, and an opening bet must be at least 1.
func (m *Multiverse) Bet(tl, amount int) error {
	timeline, board, cur, err := m.live(tl)
	if err != nil {
		return err
	}
	if minBet := max(cur.BetAmount, 1); amount < minBet {
		return fmt.Errorf("%w: %d, minimum %d", ErrBetTooSmall, amount, minBet)
	}
	m.placeBet(timeline, board, cur, amount, "bet")
	return nil
}

// Call matches the open table bet.
func (m *Multiverse) Call(tl int) error {
	timeline, board, cur, err := m.live(tl)
	if err != nil {
		return err
	}
	if cur.BetAmount == 0 {
		return ErrNothingToCall
	}
	m.placeBet(timeline, board, cur, cur.BetAmount, "call")
	return nil
}

// Raise bets at least double the open table bet.
func (m *Multiverse) Raise(tl, amount int) error {
	timeline, board, cur, err := m.live(tl)
	if err != nil {
		return err
	}
	if minRaise := max(2*cur.BetAmount, 1); amount < minRaise {
		return fmt.Errorf("%w: raise to %d, minimum %d", ErrBetTooSmall, amount, minRaise)
	}
	m.placeBet(timeline, board, cur, amount, "raise")
	return nil
}

// RaiseOrBet opens the betting when no bet is open and raises otherwise.
func (m *Multiverse) RaiseOrBet(tl, amount int) error {
	cur, err := m.CurrentTurn(tl)
	if err != nil {
		return err
	}
	if cur.BetAmount == 0 {
		return m.Bet(tl, amount)
	}
	return m.Raise(tl, amount)
}

// Fold withdraws the active player from the hand on timeline tl. When only one
// player is left the hand goes straight to showdown.
func (m *Multiverse) Fold(tl int) error {
	timeline, board, cur, err := m.live(tl)
	if err != nil {
		return err
	}
	if cur.Remaining() <= 1 {
		return ErrLastPlayer
	}

	next := cur.clone()
	next.Players[m.ActivePlayer()].Folded = true
	m.commit(timeline, board, next, "fold", 0)
	return nil
}

// Skip advances board b of timeline tl without acting. It is only allowed on
// boards the active player cannot act on: finished hands, hands past
// showdown, or hands the player has folded.
func (m *Multiverse) Skip(tl, b int) error {
	board, err := m.Board(tl, b)
	if err != nil {
		return err
	}
	g := m.GlobalTurn()
	if board.IsPast(g) {
		return ErrAlreadyActed
	}
	if !m.skippable(m.Timelines[tl], b, board.Turn(g)) {
		return ErrMustAct
	}
	board.append(board.Turn(g))
	return nil
}

// AdvanceIdle skips every board the active player cannot act on and returns
// how many were skipped.
func (m *Multiverse) AdvanceIdle() int {
	g := m.GlobalTurn()
	var idle []*Board
	for _, tl := range m.Timelines {
		for i, b := range tl.Boards {
			if !b.IsPast(g) && m.skippable(tl, i, b.Turn(g)) {
				idle = append(idle, b)
			}
		}
	}
	for _, b := range idle {
		b.append(b.Turn(g))
	}
	if len(idle) > 0 {
		m.cfg.logger.Debug("Skipped idle boards", "count", len(idle), "turn", g)
	}
	return len(idle)
}

// Awaiting lists the boards the active player still has to act on before the
// global turn can advance.
func (m *Multiverse) Awaiting() []BoardRef {
	g := m.GlobalTurn()
	var refs []BoardRef
	for t, tl := range m.Timelines {
		for i, b := range tl.Boards {
			if !b.IsPast(g) && !m.skippable(tl, i, b.Turn(g)) {
				refs = append(refs, BoardRef{Timeline: t, Board: i})
			}
		}
	}
	return refs
}

func (m *Multiverse) skippable(tl *Timeline, b int, cur *Turn) bool {
	return !tl.IsCurrent(b) || cur.IsOver() || cur.Players[m.ActivePlayer()].Folded
}

func (m *Multiverse) placeBet(timeline *Timeline, board *Board, cur *Turn, amount int, action string) {
	next := cur.clone()
	next.setBet(m.ActivePlayer(), amount)
	next.BetAmount = amount
	next.NumChecks = 0
	m.commit(timeline, board, next, action, amount)
}

// commit recomputes the stage of next, appends it to board and, when the hand
// reaches showdown, settles the pot and deals the next hand.
func (m *Multiverse) commit(timeline *Timeline, board *Board, next *Turn, action string, amount int) {
	player := m.ActivePlayer()
	if stage := next.nextStage(); stage > next.CompletedStage {
		next.enter(stage)
		if stage == StageShowdown {
			m.showdown(next)
		}
	}
	board.append(next)

	m.cfg.logger.Debug("Committed action",
		"action", action,
		"amount", amount,
		"player", player,
		"stage", next.CompletedStage,
		"turn", board.Len()-1)

	if next.Result != nil {
		timeline.Boards = append(timeline.Boards, m.nextHand(next, board.Len()))
	}
}
