// Package axis implements the per-axis façade: the
// public surface user code and board bring-up call into (set_speed,
// move_to, refill, position, ...), holding the kinematic parameters, the
// queue handle, and the ramp planner's Tail bookkeeping, and deriving
// the fixed-point constants the planner needs from plain speed/
// acceleration inputs, mirroring how tmc5160.NewStepper/Driver.Begin
// take explicit parameter structs rather than reading config files.
package axis

import (
	"sync"

	"github.com/fastaccel-go/fastaccel/backend"
	"github.com/fastaccel-go/fastaccel/fpu"
	"github.com/fastaccel-go/fastaccel/internal/tracelog"
	"github.com/fastaccel-go/fastaccel/queue"
	"github.com/fastaccel-go/fastaccel/ramp"
)

// ticksPerSecond is the timer tick rate min_step_us
// and accel against. 200kHz gives a 5us tick, comfortably inside a
// 16-bit interval for steppers running well under 100 steps/s at peak.
const ticksPerSecond = 200000

// MoveResult is the flat result enum for move/move_to and
// the delay setters.
type MoveResult uint8

const (
	MoveOK MoveResult = iota
	MoveZero
	MoveErrNoDirectionPin
	MoveErrSpeedIsUndefined
	MoveErrAccelerationIsUndefined
	MoveErrDirection
	MoveErrOverflow
	DelayTooLow
	DelayTooHigh
)

func (r MoveResult) Error() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveZero:
		return "move delta is zero"
	case MoveErrNoDirectionPin:
		return "negative delta without a direction pin"
	case MoveErrSpeedIsUndefined:
		return "set_speed not called"
	case MoveErrAccelerationIsUndefined:
		return "set_acceleration not called"
	case MoveErrDirection:
		return "new target reverses an in-flight motion"
	case MoveErrOverflow:
		return "target position would overflow a signed i32"
	case DelayTooLow:
		return "delay below its physical minimum"
	case DelayTooHigh:
		return "delay above its physical maximum"
	default:
		return "unknown move result"
	}
}

// Axis is the per-axis controller: kinematic parameters, target
// position, planner Tail state, and handles to the queue and the bound
// pulse-engine backend. The zero value is not usable; construct with
// New.
type Axis struct {
	q   *queue.Queue
	be  backend.Backend
	dir backend.DirectionSetter

	planner *ramp.Planner

	mu sync.Mutex // stands in for noInterrupts/interrupts; brief critical section only

	minStepUs uint32 // 0 = undefined
	accel     uint32 // 0 = undefined

	kinematics ramp.Kinematics
	tail       ramp.Tail
	targetPos  int32

	autoEnable       bool
	delayToEnableUs  uint16
	delayToDisableMs uint16

	currentDriver CurrentDriver
}

// CurrentDriver is the optional current/microstep configuration
// collaborator a driver package (tmcaux/tmc5160, tmcaux/tmc2209) can
// satisfy: Axis calls Configure only from ConfigureCurrentDriver, never
// on its own from a move — current regulation and microstepping are bring-up concerns,
// not part of the per-tick pulse path. Axis depends only on this
// interface, never on a concrete driver package, so either chip (or a
// test double) can be held interchangeably.
type CurrentDriver interface {
	Configure() error
}

// SpeedSyncer is the optional extension a CurrentDriver can also
// satisfy: SetSpeed calls SyncSpeed with the new peak rate in Hz so a
// chip's own velocity-dependent feature thresholds (stealthChop/
// coolStep switchover points) track the software ramp's peak speed.
type SpeedSyncer interface {
	SyncSpeed(peakHz float32) error
}

// SetCurrentDriver attaches a current/microstep configuration
// collaborator. It is not itself Configure()'d; call Configure
// explicitly (typically right after Setup()) before the first move.
func (a *Axis) SetCurrentDriver(cd CurrentDriver) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentDriver = cd
}

// ConfigureCurrentDriver runs the attached CurrentDriver's bring-up
// sequence, if one is attached. Returns nil if no driver was set.
func (a *Axis) ConfigureCurrentDriver() error {
	a.mu.Lock()
	cd := a.currentDriver
	a.mu.Unlock()
	if cd == nil {
		return nil
	}
	return cd.Configure()
}

// New returns an Axis bound to the given pulse-engine backend and
// (optional, nil if the stepper has no direction pin) direction
// collaborator. The backend's refill callback is wired to Axis.Refill.
func New(be backend.Backend, dir backend.DirectionSetter) *Axis {
	q := queue.New()
	a := &Axis{
		q:       q,
		be:      be,
		dir:     dir,
		planner: ramp.New(),
	}
	be.Bind(q, dir)
	be.SetRefillFunc(a.Refill)
	return a
}

// SetSpeed sets the peak-speed period, min_step_us, and — when a
// SpeedSyncer current driver is attached — mirrors the new peak rate
// into the chip's own velocity-dependent feature thresholds.
func (a *Axis) SetSpeed(minStepUs uint32) {
	a.mu.Lock()
	a.minStepUs = minStepUs
	cd := a.currentDriver
	a.mu.Unlock()

	if minStepUs == 0 {
		return
	}
	if ss, ok := cd.(SpeedSyncer); ok {
		if err := ss.SyncSpeed(1_000_000.0 / float32(minStepUs)); err != nil {
			tracelog.Printf("axis: sync_speed error=%s", err.Error())
		}
	}
}

// SetAcceleration sets accel (steps/s²).
func (a *Axis) SetAcceleration(accel uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.accel = accel
}

// SetAutoEnable records the auto-enable flag. Nothing in Axis reads
// it: no enable pin is asserted or deasserted around motion, and the
// Backend interface has no enable-pin operation.
func (a *Axis) SetAutoEnable(enable bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.autoEnable = enable
}

// SetDelayToEnable sets the enable-pin settle delay in microseconds,
// validated against the 0..65535us physical range.
func (a *Axis) SetDelayToEnable(us uint32) MoveResult {
	if us > 0xFFFF {
		return DelayTooHigh
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delayToEnableUs = uint16(us)
	return MoveOK
}

// SetDelayToDisable sets the disable-pin hold delay in milliseconds,
// validated against the 0..65535ms physical range.
func (a *Axis) SetDelayToDisable(ms uint32) MoveResult {
	if ms > 0xFFFF {
		return DelayTooHigh
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delayToDisableMs = uint16(ms)
	return MoveOK
}

func absI64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// deriveKinematics recomputes min_travel_ticks, upm_inv_accel2, and
// ramp_steps from the current min_step_us/accel. Caller holds a.mu.
func (a *Axis) deriveKinematics() ramp.Kinematics {
	minTravelTicks := uint16(uint64(a.minStepUs) * ticksPerSecond / 1_000_000)
	upmInvAccel2 := fpu.FromU64((uint64(ticksPerSecond) * uint64(ticksPerSecond)) / (2 * uint64(a.accel)))
	rampSteps := int32(fpu.ToU32(fpu.Divide(upmInvAccel2, fpu.Square(fpu.FromU16(minTravelTicks)))))
	return ramp.Kinematics{
		MinTravelTicks: minTravelTicks,
		UPMInvAccel2:   upmInvAccel2,
		RampSteps:      rampSteps,
	}
}

// Position returns queue.PositionNow(), the pulses actually emitted so
// far.
func (a *Axis) Position() int32 {
	return a.q.PositionNow()
}

// PositionAfterCommandsCompleted returns the position once every
// already-enqueued entry finishes: queue.pos_at_queue_end.
func (a *Axis) PositionAfterCommandsCompleted() int32 {
	return a.q.PosAtQueueEnd()
}

// SetPosition re-origins the axis by delta under a brief critical
// section, shifting both the queue's tail position and the in-flight
// target so motion continues unaffected.
func (a *Axis) SetPosition(p int32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delta := p - a.q.PosAtQueueEnd()
	a.q.AdjustPosAtQueueEnd(delta)
	a.targetPos += delta
}

// IsRunning reports whether the planner is still scheduling motion.
func (a *Axis) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tail.SpeedControlEnabled
}

// TargetPos returns the last position set by move/move_to.
func (a *Axis) TargetPos() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.targetPos
}

// RampState returns the planner's current ramp_state.
func (a *Axis) RampState() ramp.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tail.RampState
}

// MoveTo validates and starts a motion toward the absolute position pos.
func (a *Axis) MoveTo(pos int32) MoveResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.startMoveLocked(int64(pos) - int64(a.q.PosAtQueueEnd()))
}

// Move validates and starts a motion of delta steps relative to the
// in-flight target when a motion is already underway, or the queue
// tail otherwise — so calling Move mid-ramp adjusts the target already
// committed to, not the tail position already reached.
func (a *Axis) Move(delta int32) MoveResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	base := int64(a.q.PosAtQueueEnd())
	if a.tail.SpeedControlEnabled {
		base = int64(a.targetPos)
	}
	newPos := base + int64(delta)
	return a.startMoveLocked(newPos - int64(a.q.PosAtQueueEnd()))
}

// startMoveLocked validates the requested move and, on success,
// recomputes kinematics, calls plan_initial, and publishes Tail.
// Caller holds a.mu.
func (a *Axis) startMoveLocked(delta int64) MoveResult {
	if delta == 0 {
		return MoveZero
	}
	if delta < 0 && a.dir == nil {
		return MoveErrNoDirectionPin
	}
	if a.minStepUs == 0 {
		return MoveErrSpeedIsUndefined
	}
	if a.accel == 0 {
		return MoveErrAccelerationIsUndefined
	}
	if a.tail.SpeedControlEnabled {
		// an in-flight motion exists: the new target must not reverse it.
		curDir := a.targetPos > a.q.PosAtQueueEnd()
		newDir := delta > 0
		if curDir != newDir {
			return MoveErrDirection
		}
	}

	target := int64(a.q.PosAtQueueEnd()) + delta
	if target > int64(1<<31-1) || target < -int64(1<<31) {
		return MoveErrOverflow
	}

	a.kinematics = a.deriveKinematics()
	a.targetPos = int32(target)
	a.tail = a.planner.PlanInitial(int32(delta), a.q.TicksAtQueueEnd(), a.kinematics)

	tracelog.Printf("axis: move target=%d ramp_steps=%d decel_start=%d",
		a.targetPos, a.kinematics.RampSteps, a.tail.DecelerationStart)

	a.fillLocked()
	a.be.Start()
	return MoveOK
}

// StopMove retargets to current_queue_end ± performed_ramp_up_steps so
// the axis decelerates to a stop along the symmetric ramp rather than
// truncating the queue.
func (a *Axis) StopMove() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.tail.SpeedControlEnabled {
		return
	}
	forward := a.targetPos > a.q.PosAtQueueEnd()
	stopAt := a.q.PosAtQueueEnd()
	if forward {
		stopAt += a.tail.PerformedRampUpSteps
	} else {
		stopAt -= a.tail.PerformedRampUpSteps
	}
	a.targetPos = stopAt
}

// Refill is called periodically and on consumer-completion callback; it
// keeps filling the queue with single_fill batches while there's room
// and the motion isn't fully scheduled.
func (a *Axis) Refill() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fillLocked()
}

// fillLocked is the shared body of Refill/startMoveLocked. Caller holds
// a.mu; the critical section stays brief, just enough to publish a few
// words atomically — SingleFill itself never blocks.
func (a *Axis) fillLocked() {
	for !a.q.IsFull() && a.tail.SpeedControlEnabled {
		a.tail, _ = a.planner.SingleFill(a.q, a.targetPos, a.tail, a.kinematics)
	}
}
