package axis

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/fastaccel-go/fastaccel/backend"
	"github.com/fastaccel-go/fastaccel/ramp"
)

// fakeDir is a minimal backend.DirectionSetter for tests that need a
// direction pin to exist without a real machine.Pin.
type fakeDir struct{ toggles int }

func (d *fakeDir) ToggleDirection() { d.toggles++ }

func newTestAxis(dir backend.DirectionSetter) (*Axis, *backend.Test) {
	be := backend.NewTest()
	a := New(be, dir)
	return a, be
}

func TestMoveZeroIsNoOp(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	res := a.Move(0)
	c.Assert(res, qt.Equals, MoveZero)
	c.Assert(a.IsRunning(), qt.IsFalse)
}

func TestMoveWithoutAccelerationIsError(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)

	c.Assert(a.Move(100), qt.Equals, MoveErrAccelerationIsUndefined)
}

func TestMoveWithoutSpeedIsError(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetAcceleration(1000)

	c.Assert(a.Move(100), qt.Equals, MoveErrSpeedIsUndefined)
}

func TestMoveNegativeWithoutDirectionPinIsError(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(nil)
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	c.Assert(a.Move(-10), qt.Equals, MoveErrNoDirectionPin)
}

func TestMoveDrainsToTargetAndStops(t *testing.T) {
	c := qt.New(t)
	a, be := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	const target = 2000
	res := a.MoveTo(target)
	c.Assert(res, qt.Equals, MoveOK)

	for a.IsRunning() {
		be.Drain()
		a.Refill()
	}
	be.Drain()

	c.Assert(a.PositionAfterCommandsCompleted(), qt.Equals, int32(target))
	c.Assert(a.Position(), qt.Equals, int32(target))
	c.Assert(a.RampState(), qt.Equals, ramp.Idle)
}

func TestMoveReversalMidFlightIsRejected(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	c.Assert(a.MoveTo(5000), qt.Equals, MoveOK)
	// -10000 relative to the in-flight target (5000) lands well behind
	// the queue tail, a genuine reversal; a small negative delta would
	// only pull the target back while keeping it ahead of the tail, and
	// must not be rejected.
	c.Assert(a.Move(-10000), qt.Equals, MoveErrDirection)
}

func TestMoveExtendsInFlightTargetRatherThanQueueTail(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	c.Assert(a.MoveTo(1000), qt.Equals, MoveOK)

	// Move(500) should extend the in-flight target (1000) to 1500, not
	// whatever position the queue tail happens to have reached so far.
	c.Assert(a.Move(500), qt.Equals, MoveOK)
	c.Assert(a.TargetPos(), qt.Equals, int32(1500))
}

func TestSetPositionShiftsTargetAndQueueEndTogether(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)
	a.MoveTo(100)

	before := a.PositionAfterCommandsCompleted()
	a.SetPosition(before + 50)

	c.Assert(a.PositionAfterCommandsCompleted(), qt.Equals, before+50)
	c.Assert(a.TargetPos(), qt.Equals, int32(150))
}

func TestStopMoveRetargetsToSymmetricDecelPoint(t *testing.T) {
	c := qt.New(t)
	a, be := newTestAxis(&fakeDir{})
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	c.Assert(a.MoveTo(100000), qt.Equals, MoveOK)

	// let a few fills happen so performed_ramp_up_steps > 0.
	be.DrainOne()
	a.Refill()
	be.DrainOne()
	a.Refill()

	a.mu.Lock()
	performed := a.tail.PerformedRampUpSteps
	queueEnd := a.q.PosAtQueueEnd()
	a.mu.Unlock()
	c.Assert(performed > 0, qt.IsTrue)

	a.StopMove()
	c.Assert(a.TargetPos(), qt.Equals, queueEnd+performed)

	for a.IsRunning() {
		be.Drain()
		a.Refill()
	}
	be.Drain()
	c.Assert(a.PositionAfterCommandsCompleted(), qt.Equals, a.TargetPos())
}

func TestDelayToEnableRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	c.Assert(a.SetDelayToEnable(70000), qt.Equals, DelayTooHigh)
	c.Assert(a.SetDelayToEnable(1000), qt.Equals, MoveOK)
}

func TestDelayToDisableRejectsOutOfRange(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})
	c.Assert(a.SetDelayToDisable(70000), qt.Equals, DelayTooHigh)
	c.Assert(a.SetDelayToDisable(500), qt.Equals, MoveOK)
}

func TestRefillIsNoOpWhenNotRunning(t *testing.T) {
	c := qt.New(t)
	a, be := newTestAxis(&fakeDir{})
	a.Refill()
	c.Assert(be.Idled, qt.Equals, 0)
	c.Assert(a.IsRunning(), qt.IsFalse)
}

type fakeCurrentDriver struct {
	calls int
	err   error
}

func (d *fakeCurrentDriver) Configure() error {
	d.calls++
	return d.err
}

func TestConfigureCurrentDriverCallsAttachedDriver(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})

	c.Assert(a.ConfigureCurrentDriver(), qt.IsNil)

	cd := &fakeCurrentDriver{}
	a.SetCurrentDriver(cd)
	c.Assert(a.ConfigureCurrentDriver(), qt.IsNil)
	c.Assert(cd.calls, qt.Equals, 1)
}

type fakeSpeedSyncDriver struct {
	fakeCurrentDriver
	lastPeakHz float32
	calls      int
}

func (d *fakeSpeedSyncDriver) SyncSpeed(peakHz float32) error {
	d.calls++
	d.lastPeakHz = peakHz
	return nil
}

func TestSetSpeedSyncsAttachedSpeedSyncer(t *testing.T) {
	c := qt.New(t)
	a, _ := newTestAxis(&fakeDir{})

	cd := &fakeSpeedSyncDriver{}
	a.SetCurrentDriver(cd)

	a.SetSpeed(500) // 500us -> 2000Hz peak
	c.Assert(cd.calls, qt.Equals, 1)
	c.Assert(cd.lastPeakHz, qt.Equals, float32(2000))

	a.SetSpeed(0)
	c.Assert(cd.calls, qt.Equals, 1) // undefined speed: no sync attempted
}

func TestDirectionPinTogglesOnReversal(t *testing.T) {
	c := qt.New(t)
	dir := &fakeDir{}
	a, be := newTestAxis(dir)
	a.SetSpeed(1000)
	a.SetAcceleration(1000)

	c.Assert(a.MoveTo(50), qt.Equals, MoveOK)
	for a.IsRunning() {
		be.Drain()
		a.Refill()
	}
	be.Drain()

	c.Assert(a.MoveTo(0), qt.Equals, MoveOK)
	for a.IsRunning() {
		be.Drain()
		a.Refill()
	}
	be.Drain()

	c.Assert(dir.toggles > 0, qt.IsTrue)
	c.Assert(a.PositionAfterCommandsCompleted(), qt.Equals, int32(0))
}
