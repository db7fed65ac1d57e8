package game

import "github.com/lox/pokerverse/poker"

// Stage is a betting phase. Stages only move forward and StageShowdown is
// terminal.
type Stage int

const (
	StagePreflop Stage = iota
	StageFlop
	StageTurn
	StageRiver
	StageShowdown
)

func (s Stage) String() string {
	if s < StagePreflop || s > StageShowdown {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// dealt is the number of community cards each stage reveals on entry.
var dealt = [...]int{StageFlop: 3, StageTurn: 1, StageRiver: 1}

// nextStage returns the stage the hand should be in: the lowest number of
// stages any live player has matched, or showdown once at most one player is
// left.
func (t *Turn) nextStage() Stage {
	if t.Remaining() <= 1 {
		return StageShowdown
	}
	next := -1
	for _, p := range t.Players {
		if p.Folded {
			continue
		}
		if n := p.settled(t.CompletedStage, t.BetAmount); next < 0 || n < next {
			next = n
		}
	}
	return min(Stage(next), StageShowdown)
}

// enter moves the turn into stage, dealing community cards and resetting the
// table bet. Showdown is resolved by the caller since it touches the roster.
func (t *Turn) enter(stage Stage) {
	t.CompletedStage = stage
	t.BetAmount = 0
	t.NumChecks = 0
	if int(stage) < len(dealt) && dealt[stage] > 0 {
		var cards []poker.Card
		cards, t.Deck = poker.Draw(t.Deck, dealt[stage])
		t.OpenCards = append(t.OpenCards, cards...)
	}
}
