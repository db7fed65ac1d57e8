package game

import "fmt"

// Action is a typed request against the Multiverse. Front ends build actions
// from user input and hand them to Apply.
type Action interface {
	apply(m *Multiverse) error
	fmt.Stringer
}

// CheckAction checks on a timeline.
type CheckAction struct{ Timeline int }

// BetAction bets Amount on a timeline.
type BetAction struct{ Timeline, Amount int }

// CallAction calls the open bet on a timeline.
type CallAction struct{ Timeline int }

// RaiseAction raises to Amount on a timeline.
type RaiseAction struct{ Timeline, Amount int }

// FoldAction folds on a timeline.
type FoldAction struct{ Timeline int }

// SkipAction advances a board the active player cannot act on.
type SkipAction struct{ Timeline, Board int }

// AdvanceAction skips every idle board.
type AdvanceAction struct{}

// BeginAction hands the table to the active player.
type BeginAction struct{}

// ToggleAction flips a board's view preference.
type ToggleAction struct{ Timeline, Board int }

// MoveAction moves a card through time.
type MoveAction struct{ Move }

func (a CheckAction) apply(m *Multiverse) error { return m.Check(a.Timeline) }
func (a BetAction) apply(m *Multiverse) error   { return m.Bet(a.Timeline, a.Amount) }
func (a CallAction) apply(m *Multiverse) error  { return m.Call(a.Timeline) }
func (a RaiseAction) apply(m *Multiverse) error { return m.Raise(a.Timeline, a.Amount) }
func (a FoldAction) apply(m *Multiverse) error  { return m.Fold(a.Timeline) }
func (a SkipAction) apply(m *Multiverse) error  { return m.Skip(a.Timeline, a.Board) }
func (a ToggleAction) apply(m *Multiverse) error {
	return m.ToggleView(a.Timeline, a.Board)
}

func (AdvanceAction) apply(m *Multiverse) error {
	m.AdvanceIdle()
	return nil
}

func (BeginAction) apply(m *Multiverse) error {
	m.BeginTurn()
	return nil
}

func (a MoveAction) apply(m *Multiverse) error {
	_, err := m.TimeTravel(a.Move)
	return err
}

func (a CheckAction) String() string  { return fmt.Sprintf("check %d", a.Timeline) }
func (a BetAction) String() string    { return fmt.Sprintf("bet %d %d", a.Timeline, a.Amount) }
func (a CallAction) String() string   { return fmt.Sprintf("call %d", a.Timeline) }
func (a RaiseAction) String() string  { return fmt.Sprintf("raise %d %d", a.Timeline, a.Amount) }
func (a FoldAction) String() string   { return fmt.Sprintf("fold %d", a.Timeline) }
func (a SkipAction) String() string   { return fmt.Sprintf("skip %d %d", a.Timeline, a.Board) }
func (a ToggleAction) String() string { return fmt.Sprintf("toggle %d %d", a.Timeline, a.Board) }
func (AdvanceAction) String() string  { return "advance" }
func (BeginAction) String() string    { return "begin" }

func (a MoveAction) String() string {
	return fmt.Sprintf("move %d:%d:%s:%d %d:%d:%s %d",
		a.From.Timeline, a.From.Board, a.From.Slot, a.Card,
		a.To.Timeline, a.To.Board, a.To.Slot, a.Amount)
}

// Apply performs a. A rejected action leaves the Multiverse unchanged.
func (m *Multiverse) Apply(a Action) error {
	if a == nil {
		return fmt.Errorf("nil action")
	}
	return a.apply(m)
}
