package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkLoad(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Load(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			state := mustLoad(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				FEN(state)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			state := mustLoad(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(state)
			}
		})
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	state := mustLoad(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsInCheck(&state.Position, chess.White)
	}
}

func BenchmarkApply(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Midgame"], "f3g5"},
		{"Capture", benchFENs["Complex"], "e5f7"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Castle", benchFENs["Castling"], "e1g1"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			state := mustLoad(b, c.fen)
			m := chess.MustParseMove(c.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				saved := state.SaveState()
				Apply(state, m)
				state.RestoreState(saved)
			}
		})
	}
}

func BenchmarkValidate(b *testing.B) {
	state := mustLoad(b, benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Validate(state, "e2a6")
	}
}

func BenchmarkUndoLast(b *testing.B) {
	state := mustLoad(b, InitialFEN)
	line := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6", "b5a4", "g8f6", "e1g1", "f8e7"}
	play(b, state, line...)
	last := state.History[len(state.History)-1]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		UndoLast(state)
		Apply(state, last)
	}
}

func BenchmarkPerft3(b *testing.B) {
	state := mustLoad(b, InitialFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(state, 3)
	}
}
