package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerverse/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerverse.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyNamedSettings(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
game {
  players = ["Ada", "Grace", "Linus"]
  ante    = 0
  seed    = 99
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ada", "Grace", "Linus"}, cfg.Game.Players)
	assert.Equal(t, 0, cfg.Game.Ante, "an explicit zero ante is kept")
	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, game.DefaultStartingChips, cfg.Game.StartingChips)
	assert.Equal(t, game.DefaultCommunityPenalty, cfg.Game.CommunityPenalty)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadLogBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log {
  level = "debug"
  file  = "pokerverse.log"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pokerverse.log", cfg.Log.File)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `game { ante = `))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `game { ante = "lots" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = Load(writeConfig(t, `table "main" {}`))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.ApplyEnv(map[string]string{
		"POKERVERSE_GAME_PLAYERS":           "Ada,Grace",
		"POKERVERSE_GAME_COMMUNITY_PENALTY": "2",
		"POKERVERSE_GAME_AUDIT":             "true",
		"POKERVERSE_LOG_LEVEL":              "warn",
		"GAME_ANTE":                         "50",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ada", "Grace"}, cfg.Game.Players)
	assert.Equal(t, 2, cfg.Game.CommunityPenalty)
	assert.True(t, cfg.Game.Audit)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, game.DefaultAnte, cfg.Game.Ante, "unprefixed variables are ignored")

	assert.Error(t, cfg.ApplyEnv(map[string]string{"POKERVERSE_GAME_ANTE": "many"}))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"one player", func(c *Config) { c.Game.Players = []string{"Solo"} }, "invalid player count"},
		{"seven players", func(c *Config) { c.Game.Players = make([]string, 7) }, "invalid player count"},
		{"negative ante", func(c *Config) { c.Game.Ante = -1 }, "invalid ante"},
		{"negative penalty", func(c *Config) { c.Game.CommunityPenalty = -4 }, "invalid community penalty"},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }, "invalid log level"},
		{"level is case insensitive", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGameOptions(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Game.Ante = 3
	cfg.Game.StartingChips = 40
	cfg.Game.CommunityPenalty = 7

	m, err := game.New(cfg.Game.Players, cfg.GameOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Ante())
	assert.Equal(t, 7, m.CommunityPenalty())
	assert.Equal(t, 40, m.Players[0].Chips)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := map[string]log.Level{
		"debug": log.DebugLevel,
		"info":  log.InfoLevel,
		"warn":  log.WarnLevel,
		"error": log.ErrorLevel,
	}
	for level, want := range tests {
		cfg := Default()
		cfg.Log.Level = level
		assert.Equal(t, want, cfg.NewLogger(&bytes.Buffer{}).GetLevel(), level)
	}

	var buf bytes.Buffer
	cfg := Default()
	cfg.NewLogger(&buf).Debug("hidden")
	cfg.NewLogger(&buf).Info("shown", "turn", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "turn=3")
}
