package ramp

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/fastaccel-go/fastaccel/fpu"
	"github.com/fastaccel-go/fastaccel/queue"
)

// testKinematics returns a Kinematics for a 4000 step/s^2 acceleration
// at a 200kHz tick rate, with a min interval of twice MinDeltaTicks so
// the sqrt ramp math is exercised without the queue rejecting entries on
// the MinDeltaTicks floor. RampSteps is a hand-picked value, not derived
// from the other two fields.
func testKinematics() Kinematics {
	const ticksPerSecond = 200000
	const accel = 4000 // steps/s^2
	upmInvAccel2 := fpu.FromU64(uint64(ticksPerSecond) * uint64(ticksPerSecond) / (2 * accel))
	return Kinematics{
		MinTravelTicks: 400,
		UPMInvAccel2:   upmInvAccel2,
		RampSteps:      200,
	}
}

func TestChooseStateTieBreakIsCoast(t *testing.T) {
	c := qt.New(t)
	c.Assert(chooseState(400, 1000, 50, 400), qt.Equals, Coast)
}

func TestChooseStateIdleStartIsAccelerate(t *testing.T) {
	c := qt.New(t)
	c.Assert(chooseState(0, 1000, 50, 400), qt.Equals, Accelerate)
}

func TestChooseStateNearTargetIsDecelerateToStop(t *testing.T) {
	c := qt.New(t)
	c.Assert(chooseState(600, 10, 50, 400), qt.Equals, DecelerateToStop)
}

func TestChooseStateAboveMinTravelIsAccelerate(t *testing.T) {
	c := qt.New(t)
	c.Assert(chooseState(600, 1000, 50, 400), qt.Equals, Accelerate)
}

func TestChooseStateBelowMinTravelIsDecelerate(t *testing.T) {
	c := qt.New(t)
	c.Assert(chooseState(300, 1000, 50, 400), qt.Equals, Decelerate)
}

func TestPlanInitialFromStandstill(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()

	tail := p.PlanInitial(1000, 0, k)
	c.Assert(tail.PerformedRampUpSteps, qt.Equals, int32(0))
	c.Assert(tail.DecelerationStart, qt.Equals, minI32(k.RampSteps, 500))
	c.Assert(tail.SpeedControlEnabled, qt.IsTrue)
	c.Assert(tail.RampState, qt.Equals, Idle)
}

func TestPlanInitialAlreadyCoasting(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()

	tail := p.PlanInitial(1000, k.MinTravelTicks, k)
	c.Assert(tail.PerformedRampUpSteps, qt.Equals, k.RampSteps)
	c.Assert(tail.DecelerationStart, qt.Equals, k.RampSteps)
}

func TestPlanInitialOverspeedUsesWholeRampRegion(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()

	// a ticks value below MinTravelTicks means the queue is already
	// moving faster than peak cruise speed.
	tail := p.PlanInitial(1000, k.MinTravelTicks-50, k)
	c.Assert(tail.DecelerationStart, qt.Equals, k.RampSteps)
}

// runToCompletion drives SingleFill/Drain together until the move settles
// back to SpeedControlEnabled == false, as an axis refill loop would.
func runToCompletion(t *testing.T, q *queue.Queue, p *Planner, target int32, tail Tail, k Kinematics) (Tail, int) {
	t.Helper()
	fills := 0
	for tail.SpeedControlEnabled {
		var res queue.Result
		tail, res = p.SingleFill(q, target, tail, k)
		c := qt.New(t)
		c.Assert(res, qt.Not(qt.Equals), queue.StepsError)
		c.Assert(res, qt.Not(qt.Equals), queue.TooHigh)
		c.Assert(res, qt.Not(qt.Equals), queue.ChangeTooHigh)
		c.Assert(res, qt.Not(qt.Equals), queue.ChangeTooLow)
		c.Assert(res, qt.Not(qt.Equals), queue.CumulatedChangeTooLow)
		fills++
		for q.PositionNow() != q.PosAtQueueEnd() {
			if _, ok := q.Pop(); !ok {
				break
			}
		}
		if fills > 10000 {
			t.Fatal("SingleFill did not converge")
		}
	}
	return tail, fills
}

func TestSingleFillShortMoveReachesTargetAndStops(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	const target = 60
	tail := p.PlanInitial(target, 0, k)
	tail, fills := runToCompletion(t, q, p, target, tail, k)

	c.Assert(tail.SpeedControlEnabled, qt.IsFalse)
	c.Assert(tail.RampState, qt.Equals, Idle)
	c.Assert(fills > 0, qt.IsTrue)
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(target))
}

func TestSingleFillLongMoveVisitsCoast(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	const target = 5000
	tail := p.PlanInitial(target, 0, k)

	sawCoast := false
	for tail.SpeedControlEnabled {
		var res queue.Result
		tail, res = p.SingleFill(q, target, tail, k)
		c.Assert(res, qt.Not(qt.Equals), queue.StepsError)
		if tail.RampState == Coast {
			sawCoast = true
		}
		for q.PositionNow() != q.PosAtQueueEnd() {
			if _, ok := q.Pop(); !ok {
				break
			}
		}
	}

	c.Assert(sawCoast, qt.IsTrue)
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(target))
}

func TestSingleFillNegativeMoveEndsAtTarget(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	const target = -300
	tail := p.PlanInitial(target, 0, k)
	tail, _ = runToCompletion(t, q, p, target, tail, k)

	c.Assert(tail.SpeedControlEnabled, qt.IsFalse)
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(target))
}

func TestSingleFillAlreadyAtTargetDisablesSpeedControl(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	tail := Tail{SpeedControlEnabled: true, RampState: Idle}
	tail, res := p.SingleFill(q, 0, tail, k)

	c.Assert(res, qt.Equals, queue.OK)
	c.Assert(tail.SpeedControlEnabled, qt.IsFalse)
	c.Assert(tail.RampState, qt.Equals, Idle)
	c.Assert(q.IsEmpty(), qt.IsTrue)
}

func TestSingleFillEntriesRespectStepsAndDeltaInvariants(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	const target = 8000
	tail := p.PlanInitial(target, 0, k)

	for tail.SpeedControlEnabled {
		var res queue.Result
		tail, res = p.SingleFill(q, target, tail, k)
		c.Assert(res, qt.Not(qt.Equals), queue.StepsError)
		c.Assert(res, qt.Not(qt.Equals), queue.ChangeTooHigh)
		c.Assert(res, qt.Not(qt.Equals), queue.ChangeTooLow)

		for {
			e, ok := q.Pop()
			if !ok {
				break
			}
			if e.IsStop() {
				continue
			}
			c.Assert(e.Steps < 128, qt.IsTrue)
			change := int32(e.Delta) * int32(e.Steps-1)
			c.Assert(change <= 32767 && change >= -32768, qt.IsTrue)
		}
	}
}

func TestSingleFillStopsAtRemainingZero(t *testing.T) {
	c := qt.New(t)
	k := testKinematics()
	p := New()
	q := queue.New()

	tail := p.PlanInitial(1, 0, k)
	sawStop := false
	for tail.SpeedControlEnabled {
		var res queue.Result
		tail, res = p.SingleFill(q, 1, tail, k)
		c.Assert(res, qt.Not(qt.Equals), queue.StepsError)
		for {
			e, ok := q.Pop()
			if !ok {
				break
			}
			if e.IsStop() {
				sawStop = true
			}
		}
	}
	c.Assert(sawStop, qt.IsTrue)
}

func TestWithLookAheadBudgetOverridesDefault(t *testing.T) {
	c := qt.New(t)
	p := New().WithLookAheadBudget(1000)
	c.Assert(p.lookAheadBudget, qt.Equals, uint32(1000))
}
