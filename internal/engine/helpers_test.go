package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// mustLoad loads a FEN and stops the test if it is rejected.
func mustLoad(t testing.TB, fen string, opts ...Option) *GameState {
	t.Helper()
	state, err := Load(fen, opts...)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", fen, err)
	}
	return state
}

// play validates and applies each move text in turn.
func play(t testing.TB, state *GameState, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, err := Validate(state, text)
		if err != nil {
			t.Fatalf("Validate(%q) failed: %v", text, err)
		}
		if err := Apply(state, m); err != nil {
			t.Fatalf("Apply(%q) failed: %v", text, err)
		}
	}
}

func moveTexts(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func containsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}

func pieceAt(state *GameState, square string) (chess.Piece, bool) {
	return state.Board.PieceAt(chess.MustSquare(square))
}
