package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

func TestApply_Castling(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       string
		king, rook string
		emptied    []string
		wantRights string
	}{
		{"white kingside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1g1", "g1", "f1", []string{"e1", "h1"}, "kq"},
		{"white queenside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", "e1c1", "c1", "d1", []string{"e1", "a1"}, "kq"},
		{"black kingside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "e8g8", "g8", "f8", []string{"e8", "h8"}, "KQ"},
		{"black queenside", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", "e8c8", "c8", "d8", []string{"e8", "a8"}, "KQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustLoad(t, tt.fen)
			colour := state.ToMove
			play(t, state, tt.move)

			if p, ok := pieceAt(state, tt.king); !ok || p != (chess.Piece{Kind: chess.King, Colour: colour}) {
				t.Errorf("PieceAt(%s) = %v, %v; want %v king", tt.king, p, ok, colour)
			}
			if p, ok := pieceAt(state, tt.rook); !ok || p != (chess.Piece{Kind: chess.Rook, Colour: colour}) {
				t.Errorf("PieceAt(%s) = %v, %v; want %v rook", tt.rook, p, ok, colour)
			}
			for _, sq := range tt.emptied {
				if _, ok := pieceAt(state, sq); ok {
					t.Errorf("%s still occupied after castling", sq)
				}
			}
			if got := state.Castling.String(); got != tt.wantRights {
				t.Errorf("Castling = %q, want %q", got, tt.wantRights)
			}
			if state.HalfmoveClock != 1 {
				t.Errorf("HalfmoveClock = %d, want 1", state.HalfmoveClock)
			}
		})
	}
}

func TestApply_EnPassant(t *testing.T) {
	state := mustLoad(t, InitialFEN)
	play(t, state, "e2e4", "a7a6", "e4e5", "d7d5")

	if !state.EnPassant || state.EPSquare.String() != "d6" {
		t.Fatalf("en passant target = %v/%v, want d6", state.EnPassant, state.EPSquare)
	}

	play(t, state, "e5d6")

	if p, ok := pieceAt(state, "d6"); !ok || p != chess.W(chess.Pawn) {
		t.Errorf("PieceAt(d6) = %v, %v; want white pawn", p, ok)
	}
	if _, ok := pieceAt(state, "d5"); ok {
		t.Error("d5 pawn not removed by en passant")
	}
	if _, ok := pieceAt(state, "e5"); ok {
		t.Error("e5 still occupied")
	}
	if state.EnPassant {
		t.Error("EnPassant still set after capture")
	}
	if state.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", state.HalfmoveClock)
	}
}

func TestApply_EnPassantTargetExpires(t *testing.T) {
	state := mustLoad(t, InitialFEN)
	play(t, state, "e2e4")
	if !state.EnPassant || state.EPSquare.String() != "e3" {
		t.Fatalf("after e2e4 en passant target = %v/%v, want e3", state.EnPassant, state.EPSquare)
	}
	play(t, state, "g8f6")
	if state.EnPassant {
		t.Errorf("en passant target %v survived an unrelated move", state.EPSquare)
	}
}

func TestApply_Promotion(t *testing.T) {
	tests := []struct {
		move string
		want chess.Piece
	}{
		{"a7a8q", chess.W(chess.Queen)},
		{"a7a8r", chess.W(chess.Rook)},
		{"a7a8b", chess.W(chess.Bishop)},
		{"a7a8n", chess.W(chess.Knight)},
		{"a7b8q", chess.W(chess.Queen)},
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			state := mustLoad(t, "1n6/P7/8/8/8/8/8/k1K5 w - - 5 40")
			play(t, state, tt.move)
			to := tt.move[2:4]
			if p, ok := pieceAt(state, to); !ok || p != tt.want {
				t.Errorf("PieceAt(%s) = %v, %v; want %v", to, p, ok, tt.want)
			}
			if _, ok := pieceAt(state, "a7"); ok {
				t.Error("a7 still occupied")
			}
			if state.HalfmoveClock != 0 {
				t.Errorf("HalfmoveClock = %d, want 0", state.HalfmoveClock)
			}
		})
	}

	t.Run("black promotes", func(t *testing.T) {
		state := mustLoad(t, "4k3/8/8/8/8/8/6p1/K7 b - - 0 1")
		play(t, state, "g2g1n")
		if p, ok := pieceAt(state, "g1"); !ok || p != chess.B(chess.Knight) {
			t.Errorf("PieceAt(g1) = %v, %v; want black knight", p, ok)
		}
	})
}

func TestApply_CastlingRights(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{"king move clears both", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", []string{"e1f1"}, "kq"},
		{"h1 rook move", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", []string{"h1g1"}, "Qkq"},
		{"a8 rook move", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1", []string{"a8b8"}, "KQk"},
		{"rook returning keeps right lost", "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1", []string{"h1g1", "a8b8", "g1h1"}, "Qk"},
		{"capture on h8 clears black kingside", "r3k2r/6pp/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"h1h7", "g7g6", "h7h8"}, "Qq"},
		{"unmoved rook captured on a1", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"a8a1"}, "Kk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustLoad(t, tt.fen)
			play(t, state, tt.moves...)
			if got := state.Castling.String(); got != tt.want {
				t.Errorf("Castling = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_Clocks(t *testing.T) {
	state := mustLoad(t, InitialFEN)

	steps := []struct {
		move     string
		halfmove uint
		fullmove uint
		toMove   chess.Colour
	}{
		{"g1f3", 1, 1, chess.Black},
		{"g8f6", 2, 2, chess.White},
		{"e2e4", 0, 2, chess.Black},
		{"f6e4", 0, 3, chess.White},
		{"b1c3", 1, 3, chess.Black},
	}

	for _, s := range steps {
		play(t, state, s.move)
		if state.HalfmoveClock != s.halfmove || state.MoveNumber != s.fullmove || state.ToMove != s.toMove {
			t.Errorf("after %s: halfmove=%d fullmove=%d toMove=%v; want %d %d %v",
				s.move, state.HalfmoveClock, state.MoveNumber, state.ToMove, s.halfmove, s.fullmove, s.toMove)
		}
	}
	if got := moveTexts(state.History); len(got) != len(steps) {
		t.Errorf("History = %v, want %d moves", got, len(steps))
	}
}

func TestApply_RecomputesCheck(t *testing.T) {
	state := mustLoad(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	play(t, state, "a1a8")
	if !state.InCheck[chess.Black] {
		t.Error("InCheck[Black] = false after Ra8+")
	}
	if state.InCheck[chess.White] {
		t.Error("InCheck[White] = true")
	}
}

func TestApply_RejectsAndLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		move chess.Move
	}{
		{"empty origin", chess.MustParseMove("e4e5")},
		{"wrong colour", chess.MustParseMove("e7e5")},
		{"non-pawn promotion", chess.MustParseMove("g1f3q")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := mustLoad(t, InitialFEN)
			before := FEN(state)
			err := Apply(state, tt.move)
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Errorf("Apply() error = %v, want ErrIllegalMove", err)
			}
			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) || moveErr.Ply != 1 {
				t.Errorf("Apply() error = %#v, want MoveError at ply 1", err)
			}
			if after := FEN(state); after != before {
				t.Errorf("FEN changed on rejected apply: %q -> %q", before, after)
			}
			if len(state.History) != 0 {
				t.Errorf("History = %v, want empty", state.History)
			}
		})
	}

	t.Run("king capture", func(t *testing.T) {
		state := mustLoad(t, "4k3/8/8/8/8/8/8/4RK2 w - - 0 1")
		err := Apply(state, chess.MustParseMove("e1e8"))
		if !errors.Is(err, chesserrors.ErrIllegalMove) {
			t.Errorf("Apply(e1e8) error = %v, want ErrIllegalMove", err)
		}
	})
}
