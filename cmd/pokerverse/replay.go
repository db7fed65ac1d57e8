package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/pokerverse/internal/command"
	"github.com/lox/pokerverse/internal/config"
	"github.com/lox/pokerverse/internal/display"
)

// ReplayCmd applies a recorded script to a fresh game and prints the result.
type ReplayCmd struct {
	Script  string `arg:"" name:"script" help:"Path to HCL action script" type:"existingfile"`
	Verbose bool   `help:"Print the journal entry of every action"`
}

func (cmd ReplayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Error("Failed to close log file", "error", err)
		}
	}()

	script, err := command.LoadScript(cmd.Script)
	if err != nil {
		return err
	}
	return replay(context.Background(), cfg, script, cmd.Verbose, os.Stdout)
}

// replay runs script against a game built from cfg. The script's roster, seed
// and stakes win over the configuration's.
func replay(ctx context.Context, cfg *config.Config, script *command.Script, verbose bool, out io.Writer) error {
	if len(script.Players) > 0 {
		cfg.Game.Players = script.Players
	}
	if script.Seed != 0 {
		cfg.Game.Seed = script.Seed
	}
	if script.Ante != nil {
		cfg.Game.Ante = *script.Ante
	}
	if script.StartingChips != nil {
		cfg.Game.StartingChips = *script.StartingChips
	}
	if script.CommunityPenalty != nil {
		cfg.Game.CommunityPenalty = *script.CommunityPenalty
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid script settings: %w", err)
	}

	logger := cfg.NewLogger(io.Discard)
	sess, seed, err := newSession(cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	applied, replayErr := sess.Replay(ctx, script.Actions)
	if verbose {
		for _, e := range sess.Journal() {
			status := "ok"
			if e.Err != nil {
				status = e.Err.Error()
			}
			fmt.Fprintf(out, "%3d  turn %-3d p%d  %-32s %s\n", e.Seq, e.GlobalTurn, e.Player, e.Action, status)
		}
	}

	m := sess.Snapshot()
	r := display.NewRenderer(nil)
	fmt.Fprint(out, r.Render(m, display.Viewer(m)))
	fmt.Fprintf(out, "Applied %d of %d actions (seed %d)\n", applied, len(script.Actions), seed)
	return replayErr
}
