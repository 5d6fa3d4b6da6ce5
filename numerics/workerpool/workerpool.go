// Copyright 2025 The fluids Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs data-parallel loops on a fixed set of goroutines.
// A Pool is created once and reused, so evaluating a kernel over a large
// property grid (every temperature of a table, every point of a solver's
// trial vector) costs no goroutine spawns per call.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Split(len(ts), workerpool.DefaultGrain, func(start, end int) {
//	    for i := start; i < end; i++ {
//	        out[i] = special.TruncExp(-ea / (r * ts[i]))
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultGrain is the smallest range worth handing to another goroutine
// for cheap scalar kernels.
const DefaultGrain = 1024

// Pool is a persistent set of workers. Split and Steal may be called from
// several goroutines at once, but not concurrently with Close.
type Pool struct {
	workers   int
	tasks     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// task is one range of a parallel loop.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with the given number of workers.
// If workers <= 0, uses GOMAXPROCS.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan task, workers*2),
	}
	for range workers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// Close stops the workers after pending ranges finish. Calling Close more
// than once is safe; loops on a closed pool run on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// Split calls fn over contiguous ranges [start, end) that together cover
// [0, n), using at most one range per worker and at most n/grain ranges
// (rounded up). It blocks until every range is done. Loops no longer than
// grain, and loops on a closed pool, run fn(0, n) inline.
func (p *Pool) Split(n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain < 1 {
		grain = 1
	}

	parts := min(p.workers, (n+grain-1)/grain)
	if parts <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + parts - 1) / parts
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// Steal calls fn over batches of batch indices handed out by an atomic
// counter, so workers that finish early take more. Use it when the cost
// per element varies, e.g. iterative solves seeded from a grid. It blocks
// until [0, n) is covered.
func (p *Pool) Steal(n, batch int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batch < 1 {
		batch = 1
	}

	batches := (n + batch - 1) / batch
	workers := min(p.workers, batches)
	if workers <= 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(1)-1) * batch
					if start >= n {
						return
					}
					fn(start, min(start+batch, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
