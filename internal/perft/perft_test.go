package perft

import (
	"context"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/testutil"
	"github.com/lgbarn/chesscore-go/internal/testutil/fixtures"
)

const (
	position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		long  bool
	}{
		{"initial depth 0", engine.InitialFEN, 0, 1, false},
		{"initial depth 1", engine.InitialFEN, 1, 20, false},
		{"initial depth 2", engine.InitialFEN, 2, 400, false},
		{"initial depth 3", engine.InitialFEN, 3, 8902, false},
		{"kiwipete depth 2", fixtures.KiwipeteFEN, 2, 2039, false},
		{"position 3 depth 3", position3FEN, 3, 2812, false},
		{"position 4 depth 2", position4FEN, 2, 264, false},
		{"position 5 depth 2", position5FEN, 2, 1486, false},
		{"kiwipete depth 3", fixtures.KiwipeteFEN, 3, 97862, true},
		{"position 4 depth 3", position4FEN, 3, 9467, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.long && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			state := fixtures.MustLoad(t, tt.fen)
			res, err := Run(state, tt.depth, WithWorkers(4))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Nodes, tt.want)
			testutil.AssertEqual(t, res.Depth, tt.depth)
			testutil.AssertEqual(t, engine.FEN(state), tt.fen, "state must not change")
		})
	}
}

func TestRun_DivideMatchesEngine(t *testing.T) {
	state := fixtures.MustLoad(t, fixtures.KiwipeteFEN)

	res, err := Run(state, 2, WithWorkers(3))
	testutil.AssertNoError(t, err)

	want, err := engine.Divide(state, 2)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Divide, want)

	var sum uint64
	for _, n := range res.Divide {
		sum += n
	}
	testutil.AssertEqual(t, sum, res.Nodes)
	testutil.AssertEqual(t, len(res.Divide), 48)
}

func TestRun_WorkerCountDoesNotMatter(t *testing.T) {
	state := fixtures.MustLoad(t, position5FEN)

	var first *Result
	for _, n := range []int{1, 2, 8} {
		res, err := Run(state, 2, WithWorkers(n))
		testutil.AssertNoError(t, err, "workers=%d", n)
		if first == nil {
			first = res
			continue
		}
		testutil.AssertEqual(t, res.Divide, first.Divide, "workers=%d", n)
	}
}

func TestRun_WithCache(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial depth 4", engine.InitialFEN, 4, 197281},
		{"kiwipete depth 2", fixtures.KiwipeteFEN, 2, 2039},
		{"position 3 depth 4", position3FEN, 4, 43238},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.depth > 3 && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			table := hashing.NewTable(0)
			state := fixtures.MustLoad(t, tt.fen)
			res, err := Run(state, tt.depth, WithWorkers(4), WithCache(table))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, res.Nodes, tt.want)
			testutil.AssertEqual(t, engine.FEN(state), tt.fen, "state must not change")
		})
	}
}

func TestRun_CacheReusedAcrossRuns(t *testing.T) {
	table := hashing.NewTable(0)
	state := fixtures.MustLoad(t, engine.InitialFEN)

	first, err := Run(state, 3, WithCache(table))
	testutil.AssertNoError(t, err)
	if table.Len() == 0 {
		t.Fatal("table is empty after a depth 3 run")
	}

	second, err := Run(state, 3, WithCache(table))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, second.Divide, first.Divide)

	hits, _ := table.Stats()
	if hits == 0 {
		t.Error("second run made no cache hits")
	}
}

func TestRun_FullCacheStillCounts(t *testing.T) {
	table := hashing.NewTable(5)
	state := fixtures.MustLoad(t, engine.InitialFEN)

	res, err := Run(state, 3, WithCache(table))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Nodes, uint64(8902))
	testutil.AssertEqual(t, table.Len(), 5)
}

func TestRun_Terminal(t *testing.T) {
	state := fixtures.MustLoad(t, fixtures.FoolsMateFEN)

	res, err := Run(state, 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, res.Nodes, uint64(0))
	testutil.AssertEqual(t, len(res.Divide), 0)
}

func TestRunContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := fixtures.MustLoad(t, engine.InitialFEN)
	_, err := RunContext(ctx, state, 3, WithWorkers(2))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestResult_NodesPerSecond(t *testing.T) {
	if got := (&Result{Nodes: 100}).NodesPerSecond(); got != 0 {
		t.Errorf("NodesPerSecond() with no elapsed time = %v, want 0", got)
	}
}

func BenchmarkRun(b *testing.B) {
	state := fixtures.MustLoad(b, fixtures.KiwipeteFEN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(state, 2); err != nil {
			b.Fatal(err)
		}
	}
}
