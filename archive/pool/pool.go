/*
 *  MIT License
 *
 *  Copyright (c) 2020 Nicolas JUHEL
 *
 *  Permission is hereby granted, free of charge, to any person obtaining a copy
 *  of this software and associated documentation files (the "Software"), to deal
 *  in the Software without restriction, including without limitation the rights
 *  to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *  copies of the Software, and to permit persons to whom the Software is
 *  furnished to do so, subject to the following conditions:
 *
 *  The above copyright notice and this permission notice shall be included in all
 *  copies or substantial portions of the Software.
 *
 *  THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *  IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *  FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *  AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *  LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *  OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *  SOFTWARE.
 *
 */

// Package pool is the fixed-size worker pool the writer, extractor and
// verifier parallelize per-file work through: a bounded FIFO task queue,
// future-returning submission, cooperative shutdown and per-worker
// cumulative busy-time accounting exposed after Join.
package pool

import (
	"sync"
	"sync/atomic"
	"time"

	liberr "github.com/sabouaram/przm/errors"
)

// Task is a unit of work submitted to the pool. Its result and error are
// delivered through the Future returned by Submit.
type Task func() (any, error)

// Future is the completion handle Submit returns. Get blocks until the
// task has run.
type Future struct {
	done chan struct{}
	val  any
	err  error
}

// Get blocks until the task completes and returns its result.
func (f *Future) Get() (any, error) {
	<-f.done
	return f.val, f.err
}

func (f *Future) complete(val any, err error) {
	f.val, f.err = val, err
	close(f.done)
}

// Pool is a fixed number of goroutines pulling tasks off a shared FIFO
// queue. Shutdown is cooperative: Close stops accepting new tasks and
// Join waits for queued work to drain before returning.
type Pool struct {
	tasks   chan queued
	wg      sync.WaitGroup
	closed  atomic.Bool
	closeMu sync.Mutex

	busy []time.Duration
	mu   sync.Mutex
}

type queued struct {
	task   Task
	future *Future
}

// New starts size workers, each pulling from a shared queue buffered to
// queueHint (which may be 0 for a rendezvous queue). Submit blocks while
// the buffer is full.
func New(size int, queueHint int) *Pool {
	if size < 1 {
		size = 1
	}
	if queueHint < 0 {
		queueHint = 0
	}

	p := &Pool{
		tasks: make(chan queued, queueHint),
		busy:  make([]time.Duration, size),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *Pool) worker(idx int) {
	defer p.wg.Done()

	for q := range p.tasks {
		start := time.Now()
		val, err := q.task()
		elapsed := time.Since(start)

		p.mu.Lock()
		p.busy[idx] += elapsed
		p.mu.Unlock()

		q.future.complete(val, err)
	}
}

// Submit enqueues task and returns a Future for its result. Submit
// rejects new work once Close has been called.
func (p *Pool) Submit(task Task) (*Future, liberr.Error) {
	if p.closed.Load() {
		return nil, ErrorPoolClosed.Error()
	}

	f := &Future{done: make(chan struct{})}

	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed.Load() {
		return nil, ErrorPoolClosed.Error()
	}
	p.tasks <- queued{task: task, future: f}

	return f, nil
}

// Close stops accepting new submissions. Safe to call more than once.
func (p *Pool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	if p.closed.Swap(true) {
		return
	}
	close(p.tasks)
}

// Join waits for every worker to finish draining the queue and returns
// each worker's cumulative busy-time, in worker-index order. Close must
// be called first or Join blocks forever.
func (p *Pool) Join() []time.Duration {
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]time.Duration, len(p.busy))
	copy(out, p.busy)
	return out
}
