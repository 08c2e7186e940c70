// Package parallel runs independent jobs, such as row bands of a span
// fill, on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of worker goroutines with one queue each. An idle worker
// steals from the other queues before blocking on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// submit is held for reading while ForEach queues jobs and for
	// writing while Close shuts the workers down.
	submit sync.RWMutex
}

// NewPool starts a pool. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// ForEach calls fn(i) for every i in [0, n) and returns when all calls
// have finished. On a closed pool the calls run on the caller's goroutine.
// fn must not call ForEach on the same pool.
func (p *Pool) ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p.workers == 1 || n == 1 {
		runInline(n, fn)
		return
	}

	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		runInline(n, fn)
		return
	}
	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn(i)
		}
	}
	p.submit.RUnlock()
	wg.Wait()
}

func runInline(n int, fn func(i int)) {
	for i := range n {
		fn(i)
	}
}

// Close stops the workers after the queued jobs have run. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.submit.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submit.Unlock()
		return
	}
	close(p.done)
	p.submit.Unlock()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// IsRunning reports whether the pool accepts jobs.
func (p *Pool) IsRunning() bool { return p.running.Load() }
