package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, engine.InitialFEN, cfg.Game.StartFEN)
	assert.Equal(t, engine.DefaultRules(), cfg.Rules)
	assert.True(t, cfg.Output.Colour)
	assert.True(t, cfg.Output.Coordinates)
	assert.False(t, cfg.Output.Flip)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative shutdown", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad start fen", func(c *Config) { c.Game.StartFEN = "not a fen" }},
		{"start fen without kings", func(c *Config) { c.Game.StartFEN = "8/8/8/8/8/8/8/8 w - - 0 1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestLogConfig_ZerologLevel(t *testing.T) {
	level, err := LogConfig{Level: "debug"}.ZerologLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = LogConfig{Level: "chatty"}.ZerologLevel()
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithAddr("0.0.0.0", 9000).
		WithLogLevel("warn").
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithRules(engine.LegacyRules()).
		WithColour(false).
		WithFlip(true).
		Build()

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1", cfg.Game.StartFEN)
	assert.True(t, cfg.Rules.IsLegacy())
	assert.False(t, cfg.Output.Colour)
	assert.True(t, cfg.Output.Flip)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chesscore.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9191
  shutdown_timeout: 3s
log:
  level: debug
  pretty: true
game:
  start_fen: "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
rules:
  strict_castling: false
output:
  colour: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9191", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1", cfg.Game.StartFEN)
	assert.False(t, cfg.Rules.StrictCastling)
	assert.True(t, cfg.Rules.VerifySelfCheck, "unset keys keep their defaults")
	assert.False(t, cfg.Output.Colour)
	assert.True(t, cfg.Output.Coordinates)
}

func TestLoadWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chesscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	defaults := NewConfig()
	defaults.Log.Level = "warn"
	defaults.Output.Flip = true

	cfg, err := LoadWithDefaults(path, defaults)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level, "unset keys take the supplied defaults")
	assert.True(t, cfg.Output.Flip)
	assert.Equal(t, "info", NewConfig().Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chesscore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o644))

	t.Setenv("CHESSCORE_SERVER_PORT", "9292")
	t.Setenv("CHESSCORE_RULES_VERIFY_SELF_CHECK", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9292, cfg.Server.Port)
	assert.False(t, cfg.Rules.VerifySelfCheck)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chesscore.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: shouting\n"), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv("CHESSCORE_SERVER_PORT", "0")
		_, err := Load("")
		assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	})
}
