package game

import (
	"slices"

	"github.com/lox/pokerverse/poker"
)

// showdown settles the hand held in t. Each live player's hole cards are
// combined with the community cards and ranked by category. Every player pays
// their commitment and the pot is split evenly among the winners; chips lost
// to truncating the split are recorded as the remainder.
func (m *Multiverse) showdown(t *Turn) {
	hands := make(map[int][]poker.Card)
	for i, p := range t.Players {
		if !p.Folded {
			hands[i] = append(slices.Clone(p.Hand), t.OpenCards...)
		}
	}
	winners, handType := poker.Winners(hands)

	pot := t.Pot()
	for i, p := range t.Players {
		m.Players[i].Chips -= p.Commitment()
	}

	share := 0
	if len(winners) > 0 {
		share = int(float64(pot) / float64(len(winners)))
	}
	for _, w := range winners {
		m.Players[w].Chips += share
	}

	t.Result = &HandResult{
		Winners:   winners,
		HandType:  handType,
		Pot:       pot,
		Share:     share,
		Remainder: pot - share*len(winners),
	}

	m.cfg.logger.Info("Showdown",
		"winners", winners,
		"hand", handType,
		"pot", pot,
		"share", share)
}

// nextHand gathers every card of the finished hand, reshuffles them and deals
// a new board lined up at depth.
func (m *Multiverse) nextHand(done *Turn, depth int) *Board {
	deck := done.cards()
	poker.Shuffle(m.cfg.rng, deck)
	return NewBoard(deck, len(m.Players), m.cfg.ante, depth)
}
