package game

import (
	"slices"

	"github.com/lox/pokerverse/poker"
)

// holeCards is the number of cards dealt to each player at the start of a hand.
const holeCards = 2

// PlayerState is one player's position in a single hand.
type PlayerState struct {
	Hand   []poker.Card
	Bets   []int // one slot per betting stage reached
	Folded bool
	Ante   int
}

// Commitment returns the total the player has put at risk this hand.
func (p PlayerState) Commitment() int {
	total := p.Ante
	for _, b := range p.Bets {
		total += b
	}
	return total
}

// settled returns how many stages the player has matched. A slot for the
// active stage that sits below the table bet has been raised over and does
// not count until the player calls.
func (p PlayerState) settled(stage Stage, betAmount int) int {
	n := len(p.Bets)
	if n > int(stage) && p.Bets[stage] < betAmount {
		return int(stage)
	}
	return n
}

func (p PlayerState) clone() PlayerState {
	p.Hand = slices.Clone(p.Hand)
	p.Bets = slices.Clone(p.Bets)
	return p
}

// HandResult is the outcome of a showdown.
type HandResult struct {
	Winners   []int
	HandType  poker.HandType
	Pot       int
	Share     int // chips paid to each winner
	Remainder int // pot chips lost to truncating the split
}

// Turn is an immutable snapshot of one hand in progress. Once appended to a
// Board a Turn is never modified; actions clone it and append the clone.
type Turn struct {
	Players        []PlayerState
	OpenCards      []poker.Card
	Deck           []poker.Card
	CompletedStage Stage
	BetAmount      int
	NumChecks      int
	Result         *HandResult
}

// firstRound deals the hole cards of a new hand from deck.
func firstRound(deck []poker.Card, numPlayers, ante int) *Turn {
	players := make([]PlayerState, numPlayers)
	for i := range players {
		var hand []poker.Card
		hand, deck = poker.Draw(deck, holeCards)
		players[i] = PlayerState{Hand: hand, Ante: ante}
	}
	return &Turn{
		Players: players,
		Deck:    deck,
	}
}

// WinningHandType returns the category that won the showdown, if the hand has
// reached one.
func (t *Turn) WinningHandType() (poker.HandType, bool) {
	if t.Result == nil {
		return 0, false
	}
	return t.Result.HandType, true
}

// Pot returns the sum of every player's commitment.
func (t *Turn) Pot() int {
	pot := 0
	for _, p := range t.Players {
		pot += p.Commitment()
	}
	return pot
}

// Remaining returns the number of players who have not folded.
func (t *Turn) Remaining() int {
	n := 0
	for _, p := range t.Players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// IsOver reports whether the hand has reached showdown.
func (t *Turn) IsOver() bool {
	return t.CompletedStage >= StageShowdown
}

func (t *Turn) clone() *Turn {
	c := &Turn{
		Players:        make([]PlayerState, len(t.Players)),
		OpenCards:      slices.Clone(t.OpenCards),
		Deck:           slices.Clone(t.Deck),
		CompletedStage: t.CompletedStage,
		BetAmount:      t.BetAmount,
		NumChecks:      t.NumChecks,
	}
	for i, p := range t.Players {
		c.Players[i] = p.clone()
	}
	if t.Result != nil {
		r := *t.Result
		r.Winners = slices.Clone(r.Winners)
		c.Result = &r
	}
	return c
}

// setBet records amount in the player's slot for the active stage.
func (t *Turn) setBet(player, amount int) {
	p := &t.Players[player]
	if len(p.Bets) <= int(t.CompletedStage) {
		p.Bets = append(p.Bets, amount)
		return
	}
	p.Bets[t.CompletedStage] = amount
}

// cards returns every card the turn holds: hands, community and deck.
func (t *Turn) cards() []poker.Card {
	all := slices.Clone(t.Deck)
	for _, p := range t.Players {
		all = append(all, p.Hand...)
	}
	return append(all, t.OpenCards...)
}
