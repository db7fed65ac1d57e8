package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerverse/internal/config"
	"github.com/lox/pokerverse/internal/game"
	"github.com/lox/pokerverse/internal/randutil"
	"github.com/lox/pokerverse/internal/session"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command. Set flags override the config
// file and the environment.
type Globals struct {
	Config   string   `short:"c" help:"Path to HCL config file" default:"pokerverse.hcl" type:"path"`
	LogLevel string   `help:"Log level (debug, info, warn, error)"`
	LogFile  string   `help:"Write logs to this file instead of stderr" type:"path"`
	Seed     int64    `help:"Shuffle seed (0 = random)"`
	Players  []string `short:"p" help:"Comma separated player names" sep:","`
	Audit    bool     `help:"Check game invariants after every action"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play a hot-seat game on this terminal"`
	Replay  ReplayCmd        `cmd:"" help:"Replay an HCL action script"`
	Rank    RankCmd          `cmd:"" help:"Classify poker hands and pick the winners"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerverse"),
		kong.Description("Multiverse poker: hold'em across branching timelines"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load resolves the configuration: file, then environment, then flags.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if len(g.Players) > 0 {
		cfg.Game.Players = g.Players
	}
	if g.Audit {
		cfg.Game.Audit = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openLogger opens the configured log destination. The returned closer must be
// called when the command finishes.
func openLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return cfg.NewLogger(os.Stderr), nopCloser{}, nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return cfg.NewLogger(f), f, nil
}

// newSession deals a new game from cfg. The seed actually used is logged so
// the game can be replayed.
func newSession(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*session.Session, int64, error) {
	seed := randutil.Seed(cfg.Game.Seed, time.Now())
	opts := append(cfg.GameOptions(),
		game.WithSource(randutil.NewSource(seed)),
		game.WithLogger(logger),
	)
	m, err := game.New(cfg.Game.Players, opts...)
	if err != nil {
		return nil, 0, err
	}
	sess := session.New(m,
		session.WithClock(clock),
		session.WithLogger(logger),
		session.WithAudit(cfg.Game.Audit),
	)
	logger.Info("Dealt new game", "seed", seed, "players", len(m.Players))
	return sess, seed, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
