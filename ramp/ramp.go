// Package ramp implements the trapezoidal ramp planner:
// PlanInitial seeds a motion's deceleration point and ramp-position
// bookkeeping from the queue's current tail state, and SingleFill emits
// 1-3 queue entries at a time covering a short look-ahead window,
// advancing the ramp state machine (ACCELERATE/COAST/DECELERATE/
// DECELERATE_TO_STOP) until the whole move is scheduled.
package ramp

import (
	"github.com/fastaccel-go/fastaccel/fpu"
	"github.com/fastaccel-go/fastaccel/queue"
)

// State is the ramp_state.
type State uint8

const (
	Idle State = iota
	Accelerate
	Coast
	Decelerate
	DecelerateToStop
)

func (s State) String() string {
	switch s {
	case Accelerate:
		return "accelerate"
	case Coast:
		return "coast"
	case Decelerate:
		return "decelerate"
	case DecelerateToStop:
		return "decelerate_to_stop"
	default:
		return "idle"
	}
}

// lookAheadDefault is a rule-of-thumb tuning constant; any value
// yielding >= ~10ms of look-ahead at all speeds is acceptable, kept as
// a literal default and exposed as a knob via WithLookAheadBudget.
const lookAheadDefault = 16000

// Kinematics holds the per-axis derived constants: recomputed by the
// axis whenever speed or acceleration
// changes, then handed to the planner unchanged for the lifetime of one
// motion.
type Kinematics struct {
	MinTravelTicks uint16    // min_step_us converted to timer ticks
	UPMInvAccel2   fpu.Value // TICKS_PER_S^2 / (2*accel), fixed-point
	RampSteps      int32     // steps needed to reach peak speed from rest
}

// Tail is the small set of fields that must be published atomically
// against the refill ISR: deceleration_start,
// performed_ramp_up_steps, speed_control_enabled, and the state machine
// position. Kept as a plain value type; Axis owns the critical section
// around reading/writing it (axis.Axis holds its mutex while it does).
type Tail struct {
	DecelerationStart    int32
	PerformedRampUpSteps int32
	SpeedControlEnabled  bool
	RampState            State
}

// Planner is stateless except for the look-ahead tuning constant; all
// per-motion bookkeeping lives in the Tail the caller threads through.
type Planner struct {
	lookAheadBudget uint32
}

// New returns a Planner using the default look-ahead budget.
func New() *Planner {
	return &Planner{lookAheadBudget: lookAheadDefault}
}

// WithLookAheadBudget overrides the look-ahead tuning constant; any
// value giving >=10ms of look-ahead at all speeds is acceptable.
func (p *Planner) WithLookAheadBudget(budget uint32) *Planner {
	p.lookAheadBudget = budget
	return p
}

func absI32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func minI32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func ceilDivI32(a, b int32) int32 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// PlanInitial determines performed_ramp_up_steps and
// deceleration_start from the queue's current tail interval. Callers
// (axis.Axis) are responsible for validating the move (move==0, no
// direction pin, undefined speed/acceleration) before calling this —
// those are axis-level, pin/config concerns, not planner math.
func (p *Planner) PlanInitial(move int32, queueTicksAtEnd uint16, k Kinematics) Tail {
	absMove := absI32(move)

	var performed, decelStart int32
	switch {
	case queueTicksAtEnd == 0:
		// queue empty or stopped: starting from a standstill.
		performed = 0
		decelStart = minI32(k.RampSteps, absMove/2)
	case queueTicksAtEnd == k.MinTravelTicks:
		// already cruising at peak (coast) speed.
		performed = k.RampSteps
		decelStart = k.RampSteps
	default:
		t := fpu.FromU16(queueTicksAtEnd)
		performed = int32(fpu.ToU32(fpu.Divide(k.UPMInvAccel2, fpu.Square(t))))
		if queueTicksAtEnd > k.MinTravelTicks {
			// below peak speed (slower): symmetric decel point.
			decelStart = minI32(k.RampSteps, (absMove+performed)/2)
		} else {
			// overspeed: use the whole ramp region to recover to peak first.
			decelStart = k.RampSteps
		}
	}

	return Tail{
		DecelerationStart:    decelStart,
		PerformedRampUpSteps: performed,
		SpeedControlEnabled:  true,
		RampState:            Idle,
	}
}

// chooseState implements ramp_state selection, with ticksAtQueueEnd
// == MinTravelTicks landing in Coast, never Accelerate/Decelerate, so
// fixed-point sqrt rounding can't make the state oscillate across
// refills.
func chooseState(curTicks uint16, remaining, decelerationStart int32, minTravelTicks uint16) State {
	switch {
	case curTicks == 0:
		return Accelerate
	case remaining <= decelerationStart:
		return DecelerateToStop
	case minTravelTicks < curTicks:
		return Accelerate
	case minTravelTicks > curTicks:
		return Decelerate
	default:
		return Coast
	}
}

// SingleFill computes the next look-ahead batch, fragments it into
// 1-3 queue entries, and advances Tail. Returns
// the updated Tail and the result of the last queue operation performed
// (queue.OK if nothing needed enqueuing or everything succeeded).
func (p *Planner) SingleFill(q *queue.Queue, targetPos int32, tail Tail, k Kinematics) (Tail, queue.Result) {
	remaining := absI32(targetPos - q.PosAtQueueEnd())
	if remaining == 0 {
		tail.SpeedControlEnabled = false
		tail.RampState = Idle
		return tail, queue.OK
	}

	curTicks := q.TicksAtQueueEnd()
	state := chooseState(curTicks, remaining, tail.DecelerationStart, k.MinTravelTicks)

	var planningSteps int32
	if state == Accelerate && curTicks == 0 {
		planningSteps = 1
	} else {
		planningSteps = int32(p.lookAheadBudget / uint32(curTicks))
		if planningSteps < 1 {
			planningSteps = 1
		}
		if planningSteps > remaining {
			planningSteps = remaining
		}
	}

	nextTicks := int32(curTicks)
	switch state {
	case Coast:
		nextTicks = int32(k.MinTravelTicks)
		maxSteps := remaining - tail.DecelerationStart
		if planningSteps > maxSteps {
			planningSteps = maxSteps
		}
		if planningSteps < 1 {
			planningSteps = 1
		}
	case Accelerate:
		denom := tail.PerformedRampUpSteps + planningSteps
		if denom < 1 {
			denom = 1
		}
		nextTicks = int32(fpu.ToU32(fpu.Sqrt(fpu.Divide(k.UPMInvAccel2, fpu.FromU32(uint32(denom))))))
		if nextTicks < int32(k.MinTravelTicks) {
			nextTicks = int32(k.MinTravelTicks)
		}
		if curTicks != 0 && nextTicks > int32(curTicks) {
			// velocity must never fall while accelerating.
			nextTicks = int32(curTicks)
		}
	case Decelerate:
		// Same sqrt(upm_inv_accel2/x) shape as ACCELERATE, but x moves
		// back down the acceleration parabola (performed_ramp_up_steps
		// is decremented after a DECELERATE fill, see below) rather
		// than up, since this state only fires on overspeed recovery.
		denom := tail.PerformedRampUpSteps - planningSteps
		if denom < 1 {
			denom = 1
		}
		nextTicks = int32(fpu.ToU32(fpu.Sqrt(fpu.Divide(k.UPMInvAccel2, fpu.FromU32(uint32(denom))))))
		if nextTicks > int32(k.MinTravelTicks) {
			nextTicks = int32(k.MinTravelTicks)
		}
		if curTicks != 0 && nextTicks < int32(curTicks) {
			// velocity must never rise while decelerating to peak.
			nextTicks = int32(curTicks)
		}
	case DecelerateToStop:
		denom := remaining - planningSteps
		if denom < 1 {
			denom = 1
		}
		nextTicks = int32(fpu.ToU32(fpu.Sqrt(fpu.Divide(k.UPMInvAccel2, fpu.FromU32(uint32(denom))))))
		nextTicks = maxI32(nextTicks, int32(k.MinTravelTicks))
		if curTicks != 0 {
			nextTicks = maxI32(nextTicks, int32(curTicks))
		}
	}
	nextTicks = minI32(nextTicks, int32(queue.AbsoluteMaxTicks))
	nextTicks = maxI32(nextTicks, int32(queue.MinDeltaTicks))

	startTicks := int32(curTicks)
	if startTicks == 0 {
		startTicks = nextTicks
	}
	totalChange := nextTicks - startTicks
	if totalChange != 0 && absI32(totalChange) < planningSteps {
		// A change smaller than the step count would truncate to a zero
		// per-step delta and leave the tail interval where it is: move one
		// tick per step instead, over just enough steps to land on nextTicks.
		planningSteps = absI32(totalChange)
	}

	// Fragment by 127, not 128: Steps is a count that must stay <128, so
	// a planningSteps of exactly 127*k must still split into k entries
	// rather than being allowed to round down to k-1 and overflow the
	// last entry's Steps to 128.
	entriesForSteps := ceilDivI32(planningSteps, 127)
	entriesForChange := ceilDivI32(absI32(totalChange), 32767)
	commandCnt := maxI32(entriesForSteps, entriesForChange)
	if commandCnt < 1 {
		commandCnt = 1
	}
	if commandCnt > planningSteps {
		commandCnt = planningSteps
	}

	deltaPerStep := int32(0)
	if planningSteps > 0 {
		deltaPerStep = totalChange / planningSteps
	}

	dirForward := targetPos > q.PosAtQueueEnd()
	stepsPerEntry := ceilDivI32(planningSteps, commandCnt)
	stepsLeft := planningSteps
	// The first pulse of this batch is already one delta past the previous
	// batch's last interval, so the batch ends on startTicks+delta*steps.
	runningTicks := startTicks + deltaPerStep

	var lastResult queue.Result = queue.OK
	for i := int32(0); i < commandCnt && stepsLeft > 0; i++ {
		entrySteps := stepsPerEntry
		if i == commandCnt-1 || entrySteps > stepsLeft {
			entrySteps = stepsLeft
		}
		res := q.AddEntry(uint16(runningTicks), uint8(entrySteps), dirForward, int16(deltaPerStep))
		if res != queue.OK {
			lastResult = res
			if res == queue.Full {
				// benign: stop fragmenting, let the next refill pick up
				// from the queue's now-current tail state.
				return tail, res
			}
			// hard invariant violation: emergency stop.
			q.AddStop()
			tail.SpeedControlEnabled = false
			tail.RampState = Idle
			return tail, res
		}
		runningTicks += deltaPerStep * entrySteps
		stepsLeft -= entrySteps
	}

	switch state {
	case Accelerate:
		tail.PerformedRampUpSteps += planningSteps
	case Decelerate:
		tail.PerformedRampUpSteps = maxI32(0, tail.PerformedRampUpSteps-planningSteps)
	}

	if remaining-planningSteps == 0 {
		q.AddStop()
		tail.SpeedControlEnabled = false
		tail.RampState = Idle
	} else {
		tail.RampState = state
	}

	return tail, lastResult
}
