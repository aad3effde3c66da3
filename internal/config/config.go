// Package config provides configuration for the chesscore binaries.
// Values come from defaults, an optional YAML file and CHESSCORE_*
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all settings.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Game   GameConfig   `mapstructure:"game"`
	Rules  engine.Rules `mapstructure:"rules"`
	Output OutputConfig `mapstructure:"output"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address, e.g. "localhost:8080".
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Pretty switches to zerolog's human readable console writer.
	Pretty bool `mapstructure:"pretty"`
}

// GameConfig holds settings for new games.
type GameConfig struct {
	// StartFEN is the position every new session starts from.
	StartFEN string `mapstructure:"start_fen"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "localhost",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Game: GameConfig{
			StartFEN: engine.InitialFEN,
		},
		Rules:  engine.DefaultRules(),
		Output: NewOutputConfig(),
	}
}

// Validate checks that every value is usable. Failures wrap
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range: %w", c.Server.Port, errors.ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout %v is negative: %w", c.Server.ShutdownTimeout, errors.ErrInvalidConfig)
	}
	if _, err := c.Log.ZerologLevel(); err != nil {
		return err
	}
	if _, err := engine.Load(c.Game.StartFEN); err != nil {
		return fmt.Errorf("game.start_fen: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// ZerologLevel parses the configured level.
func (l LogConfig) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("log.level %q: %v: %w", l.Level, err, errors.ErrInvalidConfig)
	}
	return level, nil
}

// GameOptions returns the engine options implied by the configuration.
func (c *Config) GameOptions() []engine.Option {
	return []engine.Option{engine.WithRules(c.Rules)}
}
