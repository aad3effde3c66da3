// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

var (
	// Game options
	startFEN    = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	legacyRules = flag.Bool("legacy-rules", false, "Allow castling through attacked squares and skip the validator's self-check test")
	configFile  = flag.String("config", "", "YAML configuration file")

	// Display options
	plain   = flag.Bool("plain", false, "Draw the board without colours")
	flip    = flag.Bool("flip", false, "Draw the board from black's side")
	noCoord = flag.Bool("nocoords", false, "Don't draw rank and file labels")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count legal move tree nodes to depth N and exit")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	hashSize   = flag.Int("hash", 0, "Perft transposition table entries (0 = no table, -1 = unlimited)")

	// Logging
	logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error (default from config)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags overrides configuration values with the flags that were set.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyDisplayFlags(cfg)
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
}

// applyGameFlags configures the starting position and rules.
func applyGameFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Game.StartFEN = *startFEN
	}
	if *legacyRules {
		cfg.Rules = engine.LegacyRules()
	}
}

// applyDisplayFlags configures the board renderer.
func applyDisplayFlags(cfg *config.Config) {
	if *plain {
		cfg.Output.Colour = false
	}
	if *flip {
		cfg.Output.Flip = true
	}
	if *noCoord {
		cfg.Output.Coordinates = false
	}
}
