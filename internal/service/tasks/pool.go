package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	// ErrPoolClosed is returned by Submit after Shutdown has started.
	ErrPoolClosed = errors.New("worker pool closed")
	// ErrQueueFull is returned by Submit when the job queue is at capacity.
	ErrQueueFull = errors.New("worker pool queue full")
)

const (
	defaultWorkers = 4
	defaultQueue   = 64
)

// Job is one unit of background work. Jobs report their outcome on their own
// task entry; a job failure never affects other jobs or the pool.
type Job func(ctx context.Context)

// Pool runs jobs on a fixed set of workers fed by a bounded queue.
type Pool struct {
	// mu serializes Submit against Shutdown: the closed check, the channel
	// send, and the close must not interleave or a late submit panics.
	mu     sync.Mutex
	closed bool

	jobs   chan Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	log    *slog.Logger
}

// NewPool creates and starts a Pool. Non-positive sizes use defaults.
func NewPool(workers, queue int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queue <= 0 {
		queue = defaultQueue
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		jobs:   make(chan Job, queue),
		ctx:    ctx,
		cancel: cancel,
		log:    logger.With("service", "worker_pool"),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// Submit enqueues a job without blocking. Returns ErrQueueFull when the
// queue is at capacity and ErrPoolClosed after shutdown started.
func (p *Pool) Submit(job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs, lets queued jobs drain, and waits for the
// workers. The context bounds the wait; on expiry running jobs are canceled.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(id, job)
	}
}

// run executes one job, containing panics so a broken job cannot take the
// worker down with it.
func (p *Pool) run(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("job panicked",
				slog.Int("worker", id),
				slog.Any("panic", r),
			)
		}
	}()
	job(p.ctx)
}
