// Package parallel runs independent jobs on a fixed set of workers.
package parallel

import (
	"runtime"
	"sync"
)

// Pool dispatches jobs to its workers. A pool with a single worker runs
// every job inline on the caller's goroutine.
type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()
}

// Start creates a pool of numWorkers workers. Values below one use one
// worker per available CPU.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Inline reports whether jobs run on the caller's goroutine.
func (p *Pool) Inline() bool {
	return p.work == nil
}

// Do runs f on a worker, blocking while all workers are busy.
func (p *Pool) Do(f func()) {
	if p.Inline() {
		f()
		return
	}
	p.work <- f
}

// Wait closes the pool and waits for the queued jobs. The pool accepts no
// more work afterwards.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}
