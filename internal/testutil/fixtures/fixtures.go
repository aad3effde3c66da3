// Package fixtures provides well-known positions and helpers that load and
// play them for tests outside the engine package.
package fixtures

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Well-known test positions.
const (
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	CastlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// MustLoad loads a FEN and calls t.Fatal if it is rejected.
func MustLoad(t testing.TB, fen string, opts ...engine.Option) *engine.GameState {
	t.Helper()
	state, err := engine.Load(fen, opts...)
	if err != nil {
		t.Fatalf("engine.Load(%q) failed: %v", fen, err)
	}
	return state
}

// MustPlay validates and applies each move text in turn, calling t.Fatal
// on the first rejection.
func MustPlay(t testing.TB, state *engine.GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := engine.Validate(state, text)
		if err != nil {
			t.Fatalf("Validate(%q) failed: %v", text, err)
		}
		if err := engine.Apply(state, m); err != nil {
			t.Fatalf("Apply(%q) failed: %v", text, err)
		}
	}
}

// MoveTexts converts moves to their text form.
func MoveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}
