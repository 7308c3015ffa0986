package parallel

import (
	"runtime"
	"sync"
)

// Pool runs jobs on a fixed set of goroutines. A pool with a single worker
// runs every job synchronously on the submitting goroutine.
type Pool struct {
	wg      sync.WaitGroup
	jobs    chan func()
	workers int
	Close   func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Close:   func() {},
	}

	if numWorkers > 1 {
		pool.jobs = make(chan func(), numWorkers)

		for range numWorkers {
			pool.wg.Go(func() {
				for f := range pool.jobs {
					f()
				}
			})
		}

		pool.Close = sync.OnceFunc(func() {
			close(pool.jobs)
			pool.wg.Wait()
		})
	}

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}

// Do submits f. It blocks while all workers are busy and the queue is full.
func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Map runs fn for every element of in and returns the results in input
// order. Map must not be called after Close.
func Map[T, R any](p *Pool, in []T, fn func(int, T) R) []R {
	res := make([]R, len(in))

	var wg sync.WaitGroup
	wg.Add(len(in))
	for i, v := range in {
		p.Do(func() {
			defer wg.Done()
			res[i] = fn(i, v)
		})
	}
	wg.Wait()

	return res
}
