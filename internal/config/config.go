// Package config loads game settings from an HCL file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerverse/internal/game"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "POKERVERSE_"

// Config is the complete runtime configuration.
type Config struct {
	Game GameSettings `envPrefix:"GAME_"`
	Log  LogSettings  `envPrefix:"LOG_"`
}

// GameSettings configures a new Multiverse.
type GameSettings struct {
	Players          []string `env:"PLAYERS" envSeparator:","`
	Ante             int      `env:"ANTE"`
	StartingChips    int      `env:"STARTING_CHIPS"`
	CommunityPenalty int      `env:"COMMUNITY_PENALTY"`
	Seed             int64    `env:"SEED"`
	Audit            bool     `env:"AUDIT"`
}

// LogSettings configures the CLI logger.
type LogSettings struct {
	Level string `env:"LEVEL"`
	File  string `env:"FILE"`
}

// The file layout keeps every attribute optional so a partial file only
// overrides what it names.
type fileConfig struct {
	Game *fileGame `hcl:"game,block"`
	Log  *fileLog  `hcl:"log,block"`
}

type fileGame struct {
	Players          []string `hcl:"players,optional"`
	Ante             *int     `hcl:"ante,optional"`
	StartingChips    *int     `hcl:"starting_chips,optional"`
	CommunityPenalty *int     `hcl:"community_penalty,optional"`
	Seed             *int64   `hcl:"seed,optional"`
	Audit            *bool    `hcl:"audit,optional"`
}

type fileLog struct {
	Level *string `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Players:          []string{"", ""},
			Ante:             game.DefaultAnte,
			StartingChips:    game.DefaultStartingChips,
			CommunityPenalty: game.DefaultCommunityPenalty,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.merge(fc)
	return cfg, nil
}

func (c *Config) merge(fc fileConfig) {
	if g := fc.Game; g != nil {
		if g.Players != nil {
			c.Game.Players = g.Players
		}
		setIf(&c.Game.Ante, g.Ante)
		setIf(&c.Game.StartingChips, g.StartingChips)
		setIf(&c.Game.CommunityPenalty, g.CommunityPenalty)
		setIf(&c.Game.Seed, g.Seed)
		setIf(&c.Game.Audit, g.Audit)
	}
	if l := fc.Log; l != nil {
		setIf(&c.Log.Level, l.Level)
		setIf(&c.Log.File, l.File)
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// ApplyEnv overrides settings from POKERVERSE_* variables. A nil environ
// reads the process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate checks the configuration can start a game.
func (c *Config) Validate() error {
	if n := len(c.Game.Players); n < game.MinPlayers || n > game.MaxPlayers {
		return fmt.Errorf("invalid player count %d: must be between %d and %d", n, game.MinPlayers, game.MaxPlayers)
	}
	if c.Game.Ante < 0 {
		return fmt.Errorf("invalid ante: %d", c.Game.Ante)
	}
	if c.Game.CommunityPenalty < 0 {
		return fmt.Errorf("invalid community penalty: %d", c.Game.CommunityPenalty)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log level %q: must be one of %s", c.Log.Level, strings.Join(logLevels, ", "))
	}
	return nil
}

// GameOptions translates the game settings into engine options. The random
// source is left to the caller since it depends on the seed policy.
func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithAnte(c.Game.Ante),
		game.WithStartingChips(c.Game.StartingChips),
		game.WithCommunityPenalty(c.Game.CommunityPenalty),
	}
}

// NewLogger returns a logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokerverse",
	})
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
