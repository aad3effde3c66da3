// chesscore is an interactive terminal chess board that enforces the rules.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Log)

	session, err := game.New(
		game.WithStartFEN(cfg.Game.StartFEN),
		game.WithRules(cfg.Rules),
		game.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Rules.IsLegacy() {
		logger.Warn().Msg("legacy rules: castling through attacked squares and moves into check are accepted")
	}

	if *perftDepth > 0 {
		if err := runPerft(os.Stdout, session, perftSettings{depth: *perftDepth, workers: *workers, hashEntries: *hashSize}, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	repl := NewREPL(session, cfg.Output, os.Stdin, os.Stdout)
	if err := repl.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration file, if any, then applies the flags.
func loadConfig(path string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Log.Level = "warn"
	if path != "" {
		loaded, err := config.LoadWithDefaults(path, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes human readable log lines to w.
func newLogger(w io.Writer, cfg config.LogConfig) zerolog.Logger {
	level, err := cfg.ZerologLevel()
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: *plain}).
		Level(level).
		With().Timestamp().Logger()
}

// usage prints usage information.
func usage() {
	fmt.Fprintf(os.Stderr, "chesscore version %s\n\n", programVersion)
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play by typing moves such as e2e4 or e7e8q. Type help for commands.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
