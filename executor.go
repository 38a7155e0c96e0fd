package lasync

import "sync"

// An Executor is a deferred-task queue, and a task runner.
//
// When a task is scheduled, it is added into an internal queue.
// The Run method then pops and runs each of them from the queue until
// the queue is emptied.
// It is done in a single-threaded manner.
// If one task blocks, no other tasks can run.
// The best practice is not to block.
//
// Tasks run in the order they are scheduled (FIFO), though none of the
// library's invariants depend on that order.
//
// The primitives do not require this Executor specifically; any
// mechanism that invokes deferred zero-argument callables one at a time,
// never in overlapping frames, can drive them.
//
// Manually calling the Run method is usually not desired.
// One would instead use the Autorun method to set up an autorun function
// to calling the Run method automatically whenever a task is scheduled.
// The Executor never calls the autorun function twice at the same time.
type Executor struct {
	mu      sync.Mutex
	q       queue[func()]
	running bool
	autorun func()
}

// Autorun sets up an autorun function to calling the Run method
// automatically whenever a task is scheduled.
//
// One must pass a function that calls the Run method.
//
// If f blocks, the Schedule method may block too.
// The best practice is not to block.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// Run pops and runs every task in the queue until the queue is emptied.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.q.Empty() {
		t := e.q.Pop()
		e.mu.Unlock()
		t()
		e.mu.Lock()
	}

	e.running = false
	e.mu.Unlock()
}

// Schedule adds task in the queue for later execution.
//
// To run it, either call the Run method, or call the Autorun method to
// set up an autorun function beforehand.
//
// Schedule is safe for concurrent use.
func (e *Executor) Schedule(task func()) {
	var autorun func()

	e.mu.Lock()

	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}

	e.q.Push(task)
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}
