package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines that run phases of a batch job.
//
// All workers are started by NewWorkerPool and live until Close. Work from
// ExecuteAll is handed out through per-worker queues; an idle worker may
// steal from another worker's queue. Rendezvous tasks are pinned: task id
// always runs on worker goroutine id, so all ids of one phase run in
// parallel on distinct goroutines.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// workQueues holds per-worker work queues.
	workQueues []chan func()

	// pinned holds per-worker Rendezvous tasks. Never stolen.
	pinned []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		pinned:     make([]chan func(), workers),
		done:       make(chan struct{}),
	}

	for i := range workers {
		p.workQueues[i] = make(chan func(), 2)
		p.pinned[i] = make(chan func(), 1)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]
	myPinned := p.pinned[id]

	for {
		select {
		case <-p.done:
			p.drainQueue(myPinned)
			p.drainQueue(myQueue)
			return

		case work := <-myPinned:
			work()

		case work := <-myQueue:
			work()

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// No work available anywhere, block on own queues
			select {
			case <-p.done:
				p.drainQueue(myPinned)
				p.drainQueue(myQueue)
				return
			case work := <-myPinned:
				work()
			case work := <-myQueue:
				work()
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *WorkerPool) drainQueue(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.workers {
		if i == myID {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all to complete.
// Item i is queued on worker i % Workers(). The return is a full join: every
// write made by a work item happens before ExecuteAll returns.
// If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(len(work))

	for i, fn := range work {
		wrapped := func() {
			defer completionWG.Done()
			fn()
		}

		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool is closing, drop the item
			completionWG.Done()
		}
	}

	completionWG.Wait()
}

// Rendezvous runs fn once for every worker id in [0, Workers()) and blocks
// until all of them have returned. fn(id) runs on worker goroutine id, so
// the calls of one Rendezvous execute concurrently. Each call is an
// independent join, so callers may skip a phase without disturbing later
// ones. If the pool is closed, this is a no-op.
func (p *WorkerPool) Rendezvous(fn func(worker int)) {
	if !p.running.Load() {
		return
	}

	var phaseWG sync.WaitGroup
	phaseWG.Add(p.workers)

	for id := range p.workers {
		task := func() {
			defer phaseWG.Done()
			fn(id)
		}

		select {
		case p.pinned[id] <- task:
		case <-p.done:
			phaseWG.Done()
		}
	}

	phaseWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
