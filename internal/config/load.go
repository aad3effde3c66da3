package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. CHESSCORE_SERVER_PORT.
const EnvPrefix = "CHESSCORE"

// Load reads the configuration. When path is empty a chesscore.yaml in the
// working directory or ./config is used if present; a missing file is not
// an error. When path is set the file must exist.
func Load(path string) (*Config, error) {
	return LoadWithDefaults(path, NewConfig())
}

// LoadWithDefaults is Load with caller-supplied defaults for every key the
// file and environment leave unset.
func LoadWithDefaults(path string, defaults *Config) (*Config, error) {
	v := viper.New()
	setDefaults(v, defaults)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("chesscore")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("game.start_fen", d.Game.StartFEN)
	v.SetDefault("rules.strict_castling", d.Rules.StrictCastling)
	v.SetDefault("rules.verify_self_check", d.Rules.VerifySelfCheck)
	v.SetDefault("output.colour", d.Output.Colour)
	v.SetDefault("output.coordinates", d.Output.Coordinates)
	v.SetDefault("output.flip", d.Output.Flip)
}
