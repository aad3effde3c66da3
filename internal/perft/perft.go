// Package perft counts legal move tree nodes, splitting the root moves
// across a worker pool. It is used to check the move generator against
// published node counts.
package perft

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// Result is the outcome of a perft run.
type Result struct {
	Depth int
	Nodes uint64

	// Divide holds the node count below each root move, keyed by move text.
	Divide map[string]uint64

	Elapsed time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers int
	logger  zerolog.Logger
	table   *hashing.Table
}

// WithWorkers sets the number of goroutines. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger logs each finished root move at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCache shares table between the workers so that transposed
// subtrees are counted once. The table may be reused across runs with
// the same rules.
func WithCache(table *hashing.Table) Option {
	return func(o *options) {
		o.table = table
	}
}

// Run counts the nodes of state's legal move tree to depth. state is not
// modified.
func Run(state *engine.GameState, depth int, opts ...Option) (*Result, error) {
	return RunContext(context.Background(), state, depth, opts...)
}

// RunContext is Run with cancellation. The first error stops the workers.
func RunContext(ctx context.Context, state *engine.GameState, depth int, opts ...Option) (*Result, error) {
	o := options{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res := &Result{Depth: depth, Divide: make(map[string]uint64)}
	if depth <= 0 {
		res.Nodes = 1
		res.Elapsed = time.Since(start)
		return res, nil
	}

	moves, err := engine.LegalMoves(state)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := worker.NewPool(newCounter(o.table), worker.WithWorkers(o.workers), worker.WithBufferSize(len(moves)+1))
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, m := range moves {
			job := worker.Job{Index: i, State: state.Clone(), Move: m, Depth: depth - 1}
			if err := pool.Submit(ctx, job); err != nil {
				return
			}
		}
	}()

	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
				pool.Stop()
				cancel()
			}
			continue
		}
		res.Nodes += r.Nodes
		res.Divide[r.Move.String()] = r.Nodes
		o.logger.Debug().Str("move", r.Move.String()).Uint64("nodes", r.Nodes).Msg("root move counted")
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res.Elapsed = time.Since(start)
	return res, nil
}

// newCounter returns the worker function. Each job applies its move to
// its private state and counts what lies below.
func newCounter(table *hashing.Table) worker.CountFunc {
	return func(job worker.Job) worker.Result {
		r := worker.Result{Index: job.Index, Move: job.Move}
		if err := engine.Apply(job.State, job.Move); err != nil {
			r.Err = err
			return r
		}
		if table == nil {
			r.Nodes, r.Err = engine.Perft(job.State, job.Depth)
		} else {
			r.Nodes, r.Err = cachedPerft(job.State, job.Depth, table)
		}
		return r
	}
}

// cachedPerft is engine.Perft with lookups in table for depths above 1.
func cachedPerft(state *engine.GameState, depth int, table *hashing.Table) (uint64, error) {
	if depth <= 1 {
		return engine.Perft(state, depth)
	}
	hash := hashing.Zobrist(&state.Position)
	if nodes, ok := table.Get(hash, depth); ok {
		return nodes, nil
	}

	moves, err := engine.LegalMoves(state)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, m := range moves {
		n, err := cachedChild(state, m, depth-1, table)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	table.Put(hash, depth, nodes)
	return nodes, nil
}

func cachedChild(state *engine.GameState, m chess.Move, depth int, table *hashing.Table) (uint64, error) {
	saved := state.SaveState()
	defer state.RestoreState(saved)
	if err := engine.Apply(state, m); err != nil {
		return 0, err
	}
	return cachedPerft(state, depth, table)
}

// NodesPerSecond returns the counting rate.
func (r *Result) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}
