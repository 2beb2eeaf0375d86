//go:build tinygo

package backend

import (
	"machine"

	"github.com/fastaccel-go/fastaccel/queue"
)

// Timer1AVR is the pulse-output backend for AVR's 16-bit Timer1 in CTC
// mode: one compare-match per step, with the interval for the next pulse
// taken from the popped entry's Ticks and bumped by Delta after every
// pulse. The interval is kept in the interval field only; no Timer1
// register is written by this package. Modeled on this module's SPI comm
// register-level //go:build tinygo + machine pin-config pattern.
type Timer1AVR struct {
	StepPin machine.Pin

	q      *queue.Queue
	dir    DirectionSetter
	refill func()

	current   queue.Entry
	remaining uint8
	interval  int32
	running   bool
}

// NewTimer1AVR configures stepPin as a digital output and returns a
// backend ready to Bind.
func NewTimer1AVR(stepPin machine.Pin) *Timer1AVR {
	stepPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Timer1AVR{StepPin: stepPin}
}

func (b *Timer1AVR) Kind() Kind { return KindTimer1AVR }

func (b *Timer1AVR) Bind(q *queue.Queue, dir DirectionSetter) {
	b.q = q
	b.dir = dir
}

func (b *Timer1AVR) SetRefillFunc(f func()) { b.refill = f }

func (b *Timer1AVR) Running() bool { return b.running }

// Start pops and loads the first entry. The compare-match handler,
// onCompareMatch, is unexported and is not called from anywhere in this
// module; no machine.Timer1 compare channel is bound here.
func (b *Timer1AVR) Start() {
	if b.running {
		return
	}
	if !b.loadNext() {
		return
	}
	b.running = true
}

func (b *Timer1AVR) loadNext() bool {
	e, ok := b.q.Pop()
	if !ok {
		b.running = false
		return false
	}
	if e.IsStop() {
		b.running = false
		return false
	}
	if e.ToggleDir && b.dir != nil {
		b.dir.ToggleDirection()
	}
	b.current = e
	b.remaining = e.Steps
	b.interval = int32(e.Ticks)
	return true
}

// onCompareMatch fires one pulse on StepPin and computes the interval
// for the next one into b.interval (clamped to MinDeltaTicks).
func (b *Timer1AVR) onCompareMatch() {
	b.StepPin.High()
	b.StepPin.Low()
	b.remaining--
	if b.remaining == 0 {
		if b.refill != nil {
			b.refill()
		}
		b.loadNext()
		return
	}
	b.interval += int32(b.current.Delta)
	if b.interval < int32(queue.MinDeltaTicks) {
		b.interval = int32(queue.MinDeltaTicks)
	}
}
