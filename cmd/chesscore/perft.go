package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/perft"
)

// perftSettings carries the perft flags.
type perftSettings struct {
	depth       int
	workers     int
	hashEntries int
}

// runPerft prints the node count below each root move, then the total.
func runPerft(w io.Writer, session *game.Session, ps perftSettings, logger zerolog.Logger) error {
	opts := []perft.Option{perft.WithLogger(logger)}
	if ps.workers > 0 {
		opts = append(opts, perft.WithWorkers(ps.workers))
	}
	var table *hashing.Table
	if ps.hashEntries != 0 {
		table = hashing.NewTable(ps.hashEntries)
		opts = append(opts, perft.WithCache(table))
	}
	depth := ps.depth

	res, err := perft.Run(session.State(), depth, opts...)
	if err != nil {
		return err
	}

	moves := make([]string, 0, len(res.Divide))
	for m := range res.Divide {
		moves = append(moves, m)
	}
	sort.Strings(moves)
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, res.Divide[m])
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", res.Nodes)
	logger.Info().
		Int("depth", depth).
		Uint64("nodes", res.Nodes).
		Dur("elapsed", res.Elapsed).
		Float64("nps", res.NodesPerSecond()).
		Msg("perft finished")
	if table != nil {
		hits, misses := table.Stats()
		logger.Debug().Int("entries", table.Len()).Uint64("hits", hits).Uint64("misses", misses).Msg("perft table")
	}
	return nil
}
