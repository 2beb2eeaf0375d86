//go:build tinygo

package backend

import (
	"machine"

	"github.com/fastaccel-go/fastaccel/queue"
)

// MCPWM drives the pulse output from an ESP32 MCPWM unit/timer pair
// plus its pulse-counter (PCNT) peripheral, the second platform backend
// alongside Timer1Avr. It pops entries and toggles direction, but
// armPeriod writes no MCPWM or PCNT register: neither the PWM period nor
// the PCNT compare value is programmed by this package.
type MCPWM struct {
	Unit  uint8
	Timer uint8
	PCNT  uint8

	StepPin machine.Pin

	q      *queue.Queue
	dir    DirectionSetter
	refill func()

	running bool
}

// NewMCPWM configures stepPin as a digital output and returns a backend
// bound to the given MCPWM unit/timer and PCNT channel.
func NewMCPWM(unit, timer, pcnt uint8, stepPin machine.Pin) *MCPWM {
	stepPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &MCPWM{Unit: unit, Timer: timer, PCNT: pcnt, StepPin: stepPin}
}

func (b *MCPWM) Kind() Kind { return KindMCPWM }

func (b *MCPWM) Bind(q *queue.Queue, dir DirectionSetter) {
	b.q = q
	b.dir = dir
}

func (b *MCPWM) SetRefillFunc(f func()) { b.refill = f }

func (b *MCPWM) Running() bool { return b.running }

// Start pops the first entry and hands it to armPeriod. The PCNT
// "target reached" handler, onPulseCountReached, is unexported and is
// not called from anywhere in this module.
func (b *MCPWM) Start() {
	if b.running {
		return
	}
	if !b.loadNext() {
		return
	}
	b.running = true
}

func (b *MCPWM) loadNext() bool {
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
	b.armPeriod(e)
	return true
}

// armPeriod receives each popped entry and does nothing with it: no
// MCPWM period or PCNT compare register is written, so this package has
// no dependency on the ESP32-specific register layout.
func (b *MCPWM) armPeriod(e queue.Entry) {
	_ = e
}

// onPulseCountReached is called from the PCNT threshold ISR once the
// armed step count has been emitted in hardware.
func (b *MCPWM) onPulseCountReached() {
	if b.refill != nil {
		b.refill()
	}
	b.loadNext()
}
