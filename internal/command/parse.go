// Package command turns typed player input and HCL scripts into game actions.
package command

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lox/pokerverse/internal/game"
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command describes one action verb.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	build       func(args []string) (game.Action, error)
}

var commands = map[string]*Command{}

func init() {
	for _, cmd := range []*Command{
		{
			Name:        "check",
			Aliases:     []string{"k"},
			Usage:       "check <timeline>",
			Description: "Pass without betting",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 1)
				if err != nil {
					return nil, err
				}
				return game.CheckAction{Timeline: n[0]}, nil
			},
		},
		{
			Name:        "call",
			Aliases:     []string{"c"},
			Usage:       "call <timeline>",
			Description: "Match the open bet",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 1)
				if err != nil {
					return nil, err
				}
				return game.CallAction{Timeline: n[0]}, nil
			},
		},
		{
			Name:        "bet",
			Aliases:     []string{"b"},
			Usage:       "bet <timeline> <amount>",
			Description: "Bet at least the table bet",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 2)
				if err != nil {
					return nil, err
				}
				return game.BetAction{Timeline: n[0], Amount: n[1]}, nil
			},
		},
		{
			Name:        "raise",
			Aliases:     []string{"r"},
			Usage:       "raise <timeline> <amount>",
			Description: "Raise to at least double the table bet",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 2)
				if err != nil {
					return nil, err
				}
				return game.RaiseAction{Timeline: n[0], Amount: n[1]}, nil
			},
		},
		{
			Name:        "fold",
			Aliases:     []string{"f"},
			Usage:       "fold <timeline>",
			Description: "Leave the hand on a timeline",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 1)
				if err != nil {
					return nil, err
				}
				return game.FoldAction{Timeline: n[0]}, nil
			},
		},
		{
			Name:        "skip",
			Aliases:     []string{"s"},
			Usage:       "skip <timeline> <board>",
			Description: "Advance a board you cannot act on",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 2)
				if err != nil {
					return nil, err
				}
				return game.SkipAction{Timeline: n[0], Board: n[1]}, nil
			},
		},
		{
			Name:        "toggle",
			Aliases:     []string{"t"},
			Usage:       "toggle <timeline> <board>",
			Description: "Switch a board between its latest and present state",
			build: func(args []string) (game.Action, error) {
				n, err := ints(args, 2)
				if err != nil {
					return nil, err
				}
				return game.ToggleAction{Timeline: n[0], Board: n[1]}, nil
			},
		},
		{
			Name:        "advance",
			Aliases:     []string{"a"},
			Usage:       "advance",
			Description: "Skip every idle board",
			build: func(args []string) (game.Action, error) {
				if _, err := ints(args, 0); err != nil {
					return nil, err
				}
				return game.AdvanceAction{}, nil
			},
		},
		{
			Name:        "begin",
			Usage:       "begin",
			Description: "Take over the table for your turn",
			build: func(args []string) (game.Action, error) {
				if _, err := ints(args, 0); err != nil {
					return nil, err
				}
				return game.BeginAction{}, nil
			},
		},
		{
			Name:        "move",
			Aliases:     []string{"m"},
			Usage:       "move <tl:board:slot:card> <tl:board:slot> <amount>",
			Description: "Bet on the source timeline and send a card through time",
			build: func(args []string) (game.Action, error) {
				if len(args) != 3 {
					return nil, fmt.Errorf("expected 3 arguments, got %d", len(args))
				}
				return buildMove(args[0], args[1], args[2])
			},
		},
	} {
		commands[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			commands[alias] = cmd
		}
	}
}

// Commands lists every action verb in name order.
func Commands() []*Command {
	var out []*Command
	for name, cmd := range commands {
		if name == cmd.Name {
			out = append(out, cmd)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Parse reads one command line such as "bet 0 2" or
// "move 1:0:p0:0 0:0:c 2".
func Parse(line string) (game.Action, error) {
	parts := strings.Fields(strings.ToLower(line))
	if len(parts) == 0 {
		return nil, ErrEmpty
	}
	cmd, ok := commands[parts[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
	}
	action, err := cmd.build(parts[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w (usage: %s)", cmd.Name, err, cmd.Usage)
	}
	return action, nil
}

func buildMove(from, to, amount string) (game.Action, error) {
	src, err := ParseCoord(from, true)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	dst, err := ParseCoord(to, false)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	amt, err := strconv.Atoi(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %s", amount)
	}
	return game.MoveAction{Move: game.Move{
		From:   src.Coord,
		Card:   src.Card,
		To:     dst.Coord,
		Amount: amt,
	}}, nil
}

// CardRef is a coordinate plus, for move sources, a card index.
type CardRef struct {
	game.Coord
	Card int
}

// ParseCoord reads "timeline:board:slot", followed by ":card" when withCard
// is set. A slot is "p<N>" for a player's hand or "c" (or "community") for
// the community cards.
func ParseCoord(s string, withCard bool) (CardRef, error) {
	parts := strings.Split(s, ":")
	want := 3
	if withCard {
		want = 4
	}
	if len(parts) != want {
		return CardRef{}, fmt.Errorf("invalid coordinate %q: expected %d fields", s, want)
	}

	var ref CardRef
	var err error
	if ref.Timeline, err = strconv.Atoi(parts[0]); err != nil {
		return CardRef{}, fmt.Errorf("invalid timeline: %s", parts[0])
	}
	if ref.Board, err = strconv.Atoi(parts[1]); err != nil {
		return CardRef{}, fmt.Errorf("invalid board: %s", parts[1])
	}
	if ref.Slot, err = parseSlot(parts[2]); err != nil {
		return CardRef{}, err
	}
	if withCard {
		if ref.Card, err = strconv.Atoi(parts[3]); err != nil {
			return CardRef{}, fmt.Errorf("invalid card index: %s", parts[3])
		}
	}
	return ref, nil
}

func parseSlot(s string) (game.Slot, error) {
	switch s {
	case "c", "community":
		return game.Community, nil
	}
	if n, ok := strings.CutPrefix(s, "p"); ok {
		if i, err := strconv.Atoi(n); err == nil && i >= 0 {
			return game.Slot(i), nil
		}
	}
	return 0, fmt.Errorf("invalid slot %q: expected p<N> or c", s)
}

func ints(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %s", a)
		}
		out[i] = v
	}
	return out, nil
}
