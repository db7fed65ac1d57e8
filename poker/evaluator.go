package poker

import (
	"slices"
)

// HandType enumerates hand categories ordered from weakest to strongest.
// Hands are compared by category only; there is no kicker tie-break.
type HandType uint8

const (
	NoPair HandType = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
)

// String returns a human-readable hand description.
func (ht HandType) String() string {
	switch ht {
	case NoPair:
		return "No Pair"
	case OnePair:
		return "One Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

const subHandSize = 5

// Evaluate returns the category of the best 5-card sub-hand of hand. Hands of five
// cards or fewer are classified directly. Cards can appear more than once
// (time travel can duplicate a card across boards), which is how five of a
// kind arises.
func Evaluate(hand []Card) HandType {
	if len(hand) <= subHandSize {
		return classify(hand)
	}

	best := NoPair
	idx := [subHandSize]int{0, 1, 2, 3, 4}
	sub := make([]Card, subHandSize)
	n := len(hand)
	for {
		for i, j := range idx {
			sub[i] = hand[j]
		}
		if ht := classify(sub); ht > best {
			best = ht
			if best == FiveOfAKind {
				return best
			}
		}

		// Advance to the next combination in lexicographic order.
		i := subHandSize - 1
		for i >= 0 && idx[i] == n-subHandSize+i {
			i--
		}
		if i < 0 {
			return best
		}
		idx[i]++
		for j := i + 1; j < subHandSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func classify(cards []Card) HandType {
	ranks := byRank(cards)
	suits := bySuit(cards)
	runs := bySequence(cards)

	top := func(counts []int, i int) int {
		if i < len(counts) {
			return counts[i]
		}
		return 0
	}

	switch {
	case top(ranks, 0) >= 5:
		return FiveOfAKind
	case top(runs, 0) >= 5 && top(suits, 0) >= 5:
		return StraightFlush
	case top(ranks, 0) >= 4:
		return FourOfAKind
	case top(ranks, 0) >= 3 && top(ranks, 1) >= 2:
		return FullHouse
	case top(suits, 0) >= 5:
		return Flush
	case top(runs, 0) >= 5:
		return Straight
	case top(ranks, 0) >= 3:
		return ThreeOfAKind
	case top(ranks, 0) >= 2 && top(ranks, 1) >= 2:
		return TwoPairs
	case top(ranks, 0) >= 2:
		return OnePair
	default:
		return NoPair
	}
}

// byRank counts the cards sharing each rank, descending.
func byRank(cards []Card) []int {
	var counts [King + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}
	return descending(counts[:])
}

// bySuit counts the cards sharing each suit, descending.
func bySuit(cards []Card) []int {
	var counts [Diamonds + 1]int
	for _, c := range cards {
		counts[c.Suit]++
	}
	return descending(counts[:])
}

// bySequence returns the lengths of runs of consecutive ranks present in
// cards, descending. Ranks are scanned 1..13 without wrapping, so an Ace only
// ever starts a run.
func bySequence(cards []Card) []int {
	var present [King + 2]bool
	for _, c := range cards {
		present[c.Rank] = true
	}

	var runs []int
	run := 0
	for r := Ace; r <= King+1; r++ {
		if present[r] {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
	}
	slices.SortFunc(runs, func(a, b int) int { return b - a })
	return runs
}

func descending(counts []int) []int {
	out := make([]int, 0, len(counts))
	for _, n := range counts {
		if n > 0 {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}

// Winners evaluates every hand and returns the indices of all hands sharing the
// highest category, in ascending order, along with that category. Ties split
// the pot. An empty map yields no winners.
func Winners(hands map[int][]Card) ([]int, HandType) {
	best := NoPair
	var winners []int
	for idx, hand := range hands {
		ht := Evaluate(hand)
		switch {
		case winners == nil || ht > best:
			best = ht
			winners = []int{idx}
		case ht == best:
			winners = append(winners, idx)
		}
	}
	slices.Sort(winners)
	return winners, best
}
