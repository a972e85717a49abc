package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// Pool runs jobs on a fixed set of goroutines and collects their errors. With
// a single worker, jobs run inline on the caller's goroutine.
type Pool struct {
	wg    sync.WaitGroup
	work  chan func()
	close func()

	mu   sync.Mutex
	errs []error
}

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

// Go schedules job. It must not be called after Wait.
func (p *Pool) Go(job func() error) {
	f := func() {
		if err := job(); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}

	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Wait stops accepting jobs, waits for the scheduled ones and returns their
// joined errors.
func (p *Pool) Wait() error {
	p.close()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
