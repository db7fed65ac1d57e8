package poker

import (
	"math/rand/v2"
)

// NewDeck returns a fresh 52-card deck shuffled with the given RNG.
func NewDeck(rng *rand.Rand) []Card {
	deck := FreshDeck()
	Shuffle(rng, deck)
	return deck
}

// Shuffle shuffles cards in place using Fisher-Yates.
func Shuffle(rng *rand.Rand, cards []Card) {
	if rng == nil {
		panic("rng is required for shuffling")
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Draw pops n cards off the end of the draw stack. It returns the drawn cards
// and the remaining stack; fewer than n cards are returned when the stack runs
// short.
func Draw(stack []Card, n int) (drawn, rest []Card) {
	if n > len(stack) {
		n = len(stack)
	}
	drawn = make([]Card, 0, n)
	for range n {
		drawn = append(drawn, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return drawn, stack
}
