package engine

import (
	"sync"

	"okizeme/entity"
)

// Job computes one result set.
type Job func() []entity.Move

// Result is one finished recompute. Seq ties it back to the Submit that
// produced it; the consumer treats the view as stale until the result for
// its latest submit arrives.
type Result struct {
	Moves []entity.Move
	Seq   uint64
}

// Scheduler defers recomputes off the interactive path with last-writer-wins
// coalescing: a submit replaces any job still waiting to run, so a burst of
// keystrokes costs one recompute, not one per key. One worker, no
// preemption; a job that already started runs to completion and its result
// is identified (and ignorable) by Seq.
type Scheduler struct {
	mu      sync.Mutex
	pending Job
	seq     uint64
	kick    chan struct{}
	results chan Result
	done    chan struct{}
}

// NewScheduler starts the worker.
func NewScheduler() *Scheduler {

	sch := &Scheduler{
		kick:    make(chan struct{}, 1),
		results: make(chan Result, 8),
		done:    make(chan struct{}),
	}
	go sch.run()
	return sch
}

// Submit queues a job, superseding any not-yet-started one, and returns the
// sequence number its result will carry.
func (sch *Scheduler) Submit(job Job) uint64 {

	sch.mu.Lock()
	sch.seq++
	seq := sch.seq
	sch.pending = job
	sch.mu.Unlock()

	select {
	case sch.kick <- struct{}{}:
	default:
	}
	return seq
}

// Results delivers finished recomputes in submit order (superseded jobs
// never ran, so gaps in Seq are expected).
func (sch *Scheduler) Results() <-chan Result {
	return sch.results
}

// Close stops the worker. No Submit may follow.
func (sch *Scheduler) Close() {
	close(sch.done)
}

func (sch *Scheduler) run() {

	for {
		select {
		case <-sch.done:
			return
		case <-sch.kick:
		}

		for {
			sch.mu.Lock()
			job := sch.pending
			seq := sch.seq
			sch.pending = nil
			sch.mu.Unlock()

			if job == nil {
				break
			}

			moves := job()

			select {
			case sch.results <- Result{Moves: moves, Seq: seq}:
			case <-sch.done:
				return
			}
		}
	}
}
