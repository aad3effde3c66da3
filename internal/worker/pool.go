// Package worker provides a worker pool that counts perft subtrees in
// parallel. Each job carries its own cloned game state, so workers share
// nothing but the channels.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Job is one subtree: the position after Move, searched to Depth.
type Job struct {
	Index int // Position of the root move, for stable ordering
	State *engine.GameState
	Move  chess.Move
	Depth int
}

// Result is the outcome of a Job.
type Result struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// CountFunc counts the nodes of one job.
type CountFunc func(job Job) Result

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	count      CountFunc
	wg         sync.WaitGroup
	stopped    int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool(count CountFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		count:      count,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the workers. Once ctx is done, queued jobs are drained
// without being counted.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.Stopped() || ctx.Err() != nil {
			continue
		}
		p.results <- p.count(job)
	}
}

// Submit queues a job, blocking while the buffer is full. It returns the
// context error if ctx ends first.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers skip every job not yet started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopped, 1)
}

// Stopped returns true once Stop has been called.
func (p *Pool) Stopped() bool {
	return atomic.LoadInt32(&p.stopped) != 0
}

// Close ends submission and waits for the workers. The results channel is
// closed afterwards, so Close is usually run in its own goroutine while
// the caller drains Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished jobs, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
