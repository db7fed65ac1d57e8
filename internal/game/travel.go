package game

import (
	"fmt"
	"slices"

	"github.com/lox/pokerverse/poker"
)

// Slot is a place cards live on a board: a player's hand or, for Community,
// the open cards.
type Slot int

// Community addresses the community cards instead of a player's hand.
const Community Slot = -1

// IsCommunity reports whether the slot is the community cards.
func (s Slot) IsCommunity() bool {
	return s == Community
}

func (s Slot) String() string {
	if s.IsCommunity() {
		return "community"
	}
	return fmt.Sprintf("p%d", int(s))
}

// Coord addresses a slot on a board.
type Coord struct {
	Timeline int
	Board    int
	Slot     Slot
}

// Move relocates one card between boards. Amount is the bet or raise the
// mover must place on the source timeline before travelling.
type Move struct {
	From   Coord
	Card   int
	To     Coord
	Amount int
}

// MoveResult reports the cost of a committed move.
type MoveResult struct {
	Burn int
	// Spawned is the index of the timeline created for the destination, or
	// -1 when the card was written into the destination board in place.
	Spawned int
}

// Burn returns the chips the move costs: the distance between the boards in
// board positions and timelines, plus the community penalty when the card
// lands in the community cards.
func (m *Multiverse) Burn(mv Move) (int, error) {
	from, err := m.Timeline(mv.From.Timeline)
	if err != nil {
		return 0, err
	}
	to, err := m.Timeline(mv.To.Timeline)
	if err != nil {
		return 0, err
	}
	burn := abs((from.StartingTime+mv.From.Board)-(to.StartingTime+mv.To.Board)) +
		abs(mv.From.Timeline-mv.To.Timeline)
	if mv.To.Slot.IsCommunity() {
		burn += m.cfg.communityPenalty
	}
	return burn, nil
}

// TimeTravel moves a card between boards. The mover first bets or raises on
// the source timeline and pays the burn. The card is taken from the source
// board's state just after the present, so recorded history is never edited,
// and placed in the destination's state at the present. A destination whose
// log already runs past the present is forked into a new timeline and the
// card lands in the fork instead.
//
// Either the whole move commits or the Multiverse is left unchanged.
func (m *Multiverse) TimeTravel(mv Move) (MoveResult, error) {
	if err := m.validateMove(mv); err != nil {
		return MoveResult{}, err
	}

	g := m.GlobalTurn()
	player := m.ActivePlayer()
	if !mv.From.Slot.IsCommunity() && int(mv.From.Slot) != player {
		return MoveResult{}, ErrNotYourCard
	}
	burn, err := m.Burn(mv)
	if err != nil {
		return MoveResult{}, err
	}

	work := m.Clone()
	if err := work.RaiseOrBet(mv.From.Timeline, mv.Amount); err != nil {
		return MoveResult{}, fmt.Errorf("time travel bet: %w", err)
	}
	work.Players[player].Chips -= burn

	src := work.Timelines[mv.From.Timeline].Boards[mv.From.Board]
	if src.Len() <= g+1 {
		return MoveResult{}, ErrSourceNotAdvanced
	}
	after := src.Turn(g + 1).clone()
	card, err := take(after, mv.From.Slot, mv.Card)
	if err != nil {
		return MoveResult{}, err
	}
	src.replace(g+1, after)

	result := MoveResult{Burn: burn, Spawned: -1}
	dst := work.Timelines[mv.To.Timeline].Boards[mv.To.Board]
	if dst.IsPast(g) {
		parent := work.Timelines[mv.To.Timeline]
		idx, _, err := work.spawn(mv.To.Timeline, parent.StartingTime+mv.To.Board, g)
		if err != nil {
			return MoveResult{}, err
		}
		dst = work.Timelines[idx].Boards[0]
		result.Spawned = idx
	}
	present := dst.Turn(g).clone()
	place(present, mv.To.Slot, card)
	dst.replace(g, present)

	*m = *work

	m.cfg.logger.Debug("Time travel",
		"player", player,
		"card", card,
		"from", fmt.Sprintf("%d/%d/%s", mv.From.Timeline, mv.From.Board, mv.From.Slot),
		"to", fmt.Sprintf("%d/%d/%s", mv.To.Timeline, mv.To.Board, mv.To.Slot),
		"burn", burn,
		"spawned", result.Spawned)
	return result, nil
}

func (m *Multiverse) validateMove(mv Move) error {
	for _, c := range []Coord{mv.From, mv.To} {
		if _, err := m.Board(c.Timeline, c.Board); err != nil {
			return err
		}
		if !c.Slot.IsCommunity() {
			if err := checkIndex("player", int(c.Slot), len(m.Players)); err != nil {
				return err
			}
		}
	}
	if mv.From.Timeline == mv.To.Timeline && mv.From.Board == mv.To.Board {
		return ErrSameBoard
	}
	return nil
}

// take removes card i from slot in t.
func take(t *Turn, slot Slot, i int) (poker.Card, error) {
	cards := &t.OpenCards
	if !slot.IsCommunity() {
		cards = &t.Players[slot].Hand
	}
	if err := checkIndex("card", i, len(*cards)); err != nil {
		return poker.Card{}, err
	}
	card := (*cards)[i]
	*cards = slices.Delete(*cards, i, i+1)
	return card, nil
}

// place adds card to slot in t.
func place(t *Turn, slot Slot, card poker.Card) {
	if slot.IsCommunity() {
		t.OpenCards = append(t.OpenCards, card)
		return
	}
	t.Players[slot].Hand = append(t.Players[slot].Hand, card)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
