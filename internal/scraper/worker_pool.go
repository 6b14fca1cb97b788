package scraper

import (
	"context"
	"sync"
	"time"
)

// Task is one unit of crawl work, usually a single page fetch plus upsert.
type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool fans tasks out over a fixed number of workers with an optional
// shared rate limit. Submit after Close panics, like any closed channel send.
type WorkerPool struct {
	workers int
	tasks   chan Task

	mu     sync.RWMutex
	ticker *time.Ticker

	wg sync.WaitGroup
}

func NewWorkerPool(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

// SetRateLimit caps task starts across all workers at rps per second.
// Zero or negative removes the cap.
func (p *WorkerPool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	if rps > 0 {
		p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close stops accepting tasks. Workers drain what was already submitted and
// the Run result channel closes once they finish.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
	}
	p.mu.Unlock()
	close(p.tasks)
}

// Run starts the workers and returns the channel their results arrive on.
// The channel is buffered generously so slow consumers do not stall workers.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result, 1)
		close(out)
		return out
	}
	out := make(chan Result, max(p.workers*1024, 1))

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.worker(ctx, out)
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()
	return out
}

func (p *WorkerPool) worker(ctx context.Context, out chan<- Result) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-p.tasks:
			if !ok {
				return
			}
			if t == nil {
				continue
			}
			if !p.throttle(ctx) {
				return
			}
			select {
			case <-ctx.Done():
				return
			case out <- Result{Err: t(ctx)}:
			}
		}
	}
}

// throttle blocks until the rate limiter releases a slot. Returns false when
// the context ended while waiting.
func (p *WorkerPool) throttle(ctx context.Context) bool {
	p.mu.RLock()
	ticker := p.ticker
	p.mu.RUnlock()
	if ticker == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return false
	case <-ticker.C:
		return true
	}
}
