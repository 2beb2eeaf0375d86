package backend

import "github.com/fastaccel-go/fastaccel/queue"

// Test is a hosted, software-only Backend used by package tests and by
// host-side simulation: it has no timer, so Drain (rather than an
// interrupt) drives it forward one entry at a time, exactly replaying
// what a real pulse engine would do with each popped entry.
type Test struct {
	q       *queue.Queue
	dir     DirectionSetter
	refill  func()
	running bool

	// StepPulses counts every step emitted so far, for assertions;
	// tests can also just check q.PositionNow().
	StepPulses int
	// Idled counts how many times Drain/DrainOne went idle (stop sentinel
	// or empty queue), for assertions that a motion ended cleanly.
	Idled int
}

// NewTest returns an unbound Test backend.
func NewTest() *Test { return &Test{} }

func (b *Test) Kind() Kind { return KindTest }

func (b *Test) Bind(q *queue.Queue, dir DirectionSetter) {
	b.q = q
	b.dir = dir
}

func (b *Test) SetRefillFunc(f func()) { b.refill = f }

func (b *Test) Start() { b.running = true }

func (b *Test) Running() bool { return b.running }

// Drain pops and "fires" entries until the queue empties or a stop
// sentinel is popped, calling the refill callback after each entry the
// way a real interrupt handler would, so the planner gets a chance to
// top the queue back up mid-drain. Returns the number of entries
// consumed.
func (b *Test) Drain() int {
	b.Start()
	consumed := 0
	for {
		e, ok := b.q.Pop()
		if !ok {
			b.running = false
			b.Idled++
			return consumed
		}
		consumed++
		if e.IsStop() {
			b.running = false
			b.Idled++
			return consumed
		}
		if e.ToggleDir && b.dir != nil {
			b.dir.ToggleDirection()
		}
		b.StepPulses += int(e.Steps)
		if b.refill != nil {
			b.refill()
		}
	}
}

// DrainOne pops and fires exactly one entry (or the stop sentinel),
// for tests that want to interleave refills one entry at a time rather
// than draining to completion in one call. Returns false once the queue
// is empty.
func (b *Test) DrainOne() bool {
	b.Start()
	e, ok := b.q.Pop()
	if !ok {
		b.running = false
		b.Idled++
		return false
	}
	if e.IsStop() {
		b.running = false
		b.Idled++
		return true
	}
	if e.ToggleDir && b.dir != nil {
		b.dir.ToggleDirection()
	}
	b.StepPulses += int(e.Steps)
	if b.refill != nil {
		b.refill()
	}
	return true
}
