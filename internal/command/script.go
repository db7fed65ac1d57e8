package command

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerverse/internal/game"
)

// Script is a recorded game: an optional roster, seed and table stakes plus
// the actions to replay, in order. Unset stakes fall back to the
// configuration.
//
//	players           = ["Ada", "Grace"]
//	seed              = 7
//	ante              = 1
//	starting_chips    = 100
//	community_penalty = 4
//
//	action "bet" {
//	  timeline = 0
//	  amount   = 2
//	}
//
//	action "move" {
//	  from   = "1:0:p0:0"
//	  to     = "0:0:p0"
//	  amount = 2
//	}
type Script struct {
	Players          []string
	Seed             int64
	Ante             *int
	StartingChips    *int
	CommunityPenalty *int
	Actions          []game.Action
}

type scriptFile struct {
	Players          []string       `hcl:"players,optional"`
	Seed             *int64         `hcl:"seed,optional"`
	Ante             *int           `hcl:"ante,optional"`
	StartingChips    *int           `hcl:"starting_chips,optional"`
	CommunityPenalty *int           `hcl:"community_penalty,optional"`
	Actions          []scriptAction `hcl:"action,block"`
}

type scriptAction struct {
	Kind     string `hcl:"kind,label"`
	Timeline int    `hcl:"timeline,optional"`
	Board    int    `hcl:"board,optional"`
	Amount   int    `hcl:"amount,optional"`
	From     string `hcl:"from,optional"`
	To       string `hcl:"to,optional"`
}

// LoadScript reads a script file.
func LoadScript(filename string) (*Script, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(src, filename)
}

// ParseScript decodes script source. filename is only used in diagnostics.
func ParseScript(src []byte, filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var sf scriptFile
	if diags := gohcl.DecodeBody(file.Body, nil, &sf); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	script := &Script{
		Players:          sf.Players,
		Ante:             sf.Ante,
		StartingChips:    sf.StartingChips,
		CommunityPenalty: sf.CommunityPenalty,
	}
	if sf.Seed != nil {
		script.Seed = *sf.Seed
	}
	for i, sa := range sf.Actions {
		action, err := sa.action()
		if err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, sa.Kind, err)
		}
		script.Actions = append(script.Actions, action)
	}
	return script, nil
}

// action maps a block onto the same builders the text commands use.
func (sa scriptAction) action() (game.Action, error) {
	cmd, ok := commands[sa.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, sa.Kind)
	}
	tl, b, amt := strconv.Itoa(sa.Timeline), strconv.Itoa(sa.Board), strconv.Itoa(sa.Amount)

	var args []string
	switch cmd.Name {
	case "check", "call", "fold":
		args = []string{tl}
	case "bet", "raise":
		args = []string{tl, amt}
	case "skip", "toggle":
		args = []string{tl, b}
	case "move":
		args = []string{sa.From, sa.To, amt}
	}
	return cmd.build(args)
}
