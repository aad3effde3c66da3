package config

import "github.com/lgbarn/chesscore-go/internal/engine"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithAddr sets the server host and port.
func (b *ConfigBuilder) WithAddr(host string, port int) *ConfigBuilder {
	b.cfg.Server.Host = host
	b.cfg.Server.Port = port
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithRules sets the rule strictness.
func (b *ConfigBuilder) WithRules(r engine.Rules) *ConfigBuilder {
	b.cfg.Rules = r
	return b
}

// WithColour enables or disables ANSI colour output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithFlip draws the board from black's side.
func (b *ConfigBuilder) WithFlip(enabled bool) *ConfigBuilder {
	b.cfg.Output.Flip = enabled
	return b
}
