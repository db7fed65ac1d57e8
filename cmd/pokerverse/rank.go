package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerverse/poker"
)

// RankCmd classifies each hand and reports the winners among them.
type RankCmd struct {
	Hands []string `arg:"" name:"hand" help:"Hands to rank, e.g. AsKsQsJsTs"`
}

func (cmd RankCmd) Run() error {
	return rank(cmd.Hands, os.Stdout)
}

func rank(hands []string, out io.Writer) error {
	parsed := make(map[int][]poker.Card, len(hands))
	for i, h := range hands {
		cards, err := poker.ParseCards(h)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(cards) == 0 {
			return fmt.Errorf("hand %d is empty", i+1)
		}
		parsed[i] = cards
		fmt.Fprintf(out, "%d: %-22s %s\n", i+1, poker.FormatCards(cards), poker.Evaluate(cards))
	}

	if len(parsed) > 1 {
		winners, best := poker.Winners(parsed)
		labels := make([]int, len(winners))
		for i, w := range winners {
			labels[i] = w + 1
		}
		fmt.Fprintf(out, "Winners: %v with %s\n", labels, best)
	}
	return nil
}
