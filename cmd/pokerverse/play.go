package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"

	"github.com/lox/pokerverse/internal/command"
	"github.com/lox/pokerverse/internal/config"
	"github.com/lox/pokerverse/internal/display"
	"github.com/lox/pokerverse/internal/session"
	"github.com/lox/pokerverse/internal/tui"
)

// PlayCmd runs a hot-seat game: players share the terminal and hand it over
// with "begin" at the start of each turn.
type PlayCmd struct {
	Record string `help:"Save the game as a replayable HCL script on exit" type:"path"`
}

func (cmd PlayCmd) Run(g *Globals) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, seed, err := newSession(cfg, logger, quartz.NewReal())
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(ctx, sess, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	if err != nil {
		err = fmt.Errorf("error running TUI: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Session %s (seed %d)\n", sess.ID(), seed)
	fmt.Fprintln(os.Stdout, display.NewRenderer(nil).Standings(sess.Snapshot()))

	if cmd.Record != "" {
		if recErr := record(cmd.Record, sess, seed, cfg); recErr != nil {
			return errors.Join(err, recErr)
		}
		logger.Info("Recorded game", "file", cmd.Record, "actions", len(sess.Applied()))
	}
	return err
}

// record saves the committed actions of sess with the seed and stakes they
// were played under, so "replay" can reproduce them.
func record(filename string, sess *session.Session, seed int64, cfg *config.Config) error {
	m := sess.Snapshot()
	players := make([]string, len(m.Players))
	for i, p := range m.Players {
		players[i] = p.Name
	}
	return command.SaveScript(filename, &command.Script{
		Players:          players,
		Seed:             seed,
		Ante:             &cfg.Game.Ante,
		StartingChips:    &cfg.Game.StartingChips,
		CommunityPenalty: &cfg.Game.CommunityPenalty,
		Actions:          sess.Applied(),
	})
}
