// Package backend defines the pulse-engine consumer contract: the
// operations table a hardware-interrupt-driven driver must present so
// the ramp planner and axis controller never dynamically dispatch on,
// or even know, which timer/PWM/pulse-counter peripheral is underneath.
// Kind models a sum-type-over-platform-backends design (Timer1Avr,
// Mcpwm, Test) behind one indirection.
package backend

import "github.com/fastaccel-go/fastaccel/queue"

// Kind identifies which concrete backend an Axis is bound to, mirroring
// the comm-interface type-assertion pattern used elsewhere in this module
// (tmc2209.Driver.Setup checks `d.comm.(interface{ Setup() error })`)
// without needing a type assertion at every call site.
type Kind uint8

const (
	KindTest Kind = iota
	KindTimer1AVR
	KindMCPWM
)

func (k Kind) String() string {
	switch k {
	case KindTimer1AVR:
		return "timer1avr"
	case KindMCPWM:
		return "mcpwm"
	default:
		return "test"
	}
}

// Backend is the contract a platform driver implements. A driver pops
// QueueEntry values straight out of the bound queue (read-only access
// indexed by the queue's own read index), advances that index itself,
// and programs the next pulse train; it never calls back into user code
// beyond the refill request.
type Backend interface {
	Kind() Kind

	// Bind gives the backend read access to the queue it will drain and
	// the direction pin (nil if the stepper has none) it must toggle
	// per each popped entry's ToggleDir bit. Called once at axis
	// construction.
	Bind(q *queue.Queue, dir DirectionSetter)

	// SetRefillFunc registers the callback the backend invokes after
	// consuming an entry and finding room in the queue. Axis wires this
	// to Axis.Refill.
	SetRefillFunc(f func())

	// Start arms the hardware to begin draining the bound queue from
	// idle; a no-op if already running. Real backends program the timer
	// with the first popped entry's Ticks/Steps; the Test backend just
	// marks itself running so Drain has something to do.
	Start()

	// Running reports whether the backend is currently producing
	// pulses (equivalently: has popped an entry it hasn't finished).
	Running() bool
}

// DirectionSetter is the optional pin-level collaborator an Axis uses to
// honor a popped entry's ToggleDir bit. A nil DirectionSetter means the
// stepper has no direction pin (Axis.MoveErrNoDirectionPin case).
// Every Backend in this package, hardware or Test, toggles direction
// only through the DirectionSetter handed to Bind.
type DirectionSetter interface {
	ToggleDirection()
}
