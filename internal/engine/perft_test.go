package engine

import (
	"testing"
)

// Reference node counts from the chess programming wiki perft results.
var perftCases = []struct {
	name  string
	fen   string
	nodes []uint64 // nodes[d-1] is perft(d)
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftCases {
		t.Run(tt.name, func(t *testing.T) {
			state := mustLoad(t, tt.fen)
			before := FEN(state)
			for i, want := range tt.nodes {
				depth := i + 1
				if depth > 2 && testing.Short() {
					break
				}
				got, err := Perft(state, depth)
				if err != nil {
					t.Fatalf("Perft(%d) error: %v", depth, err)
				}
				if got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
			if after := FEN(state); after != before {
				t.Errorf("Perft changed the state: %q -> %q", before, after)
			}
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	state := mustLoad(t, InitialFEN)
	if got, err := Perft(state, 0); err != nil || got != 1 {
		t.Errorf("Perft(0) = %d, %v; want 1, nil", got, err)
	}
}

func TestDivide(t *testing.T) {
	state := mustLoad(t, InitialFEN)
	div, err := Divide(state, 2)
	if err != nil {
		t.Fatalf("Divide() error: %v", err)
	}
	if len(div) != 20 {
		t.Errorf("len(Divide()) = %d, want 20", len(div))
	}
	var total uint64
	for move, n := range div {
		if n != 20 {
			t.Errorf("Divide()[%s] = %d, want 20", move, n)
		}
		total += n
	}
	if total != 400 {
		t.Errorf("sum of Divide() = %d, want 400", total)
	}
}
