package queue

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestAddEntryUpdatesTailState(t *testing.T) {
	c := qt.New(t)
	q := New()

	res := q.AddEntry(1000, 10, true, -20)
	c.Assert(res, qt.Equals, OK)
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(10))
	c.Assert(q.DirAtQueueEnd(), qt.IsTrue)
	c.Assert(q.TicksAtQueueEnd(), qt.Equals, uint16(1000-20*9))
}

func TestAddEntryRejectsStepsOutOfRange(t *testing.T) {
	c := qt.New(t)
	q := New()
	c.Assert(q.AddEntry(1000, 0, true, 0), qt.Equals, StepsError)
	c.Assert(q.AddEntry(1000, 128, true, 0), qt.Equals, StepsError)
	c.Assert(q.AddEntry(1000, 127, true, 0), qt.Equals, OK)
}

func TestAddEntryRejectsTicksTooHigh(t *testing.T) {
	c := qt.New(t)
	q := New()
	c.Assert(q.AddEntry(AbsoluteMaxTicks+1, 5, true, 0), qt.Equals, TooHigh)
	c.Assert(q.AddEntry(AbsoluteMaxTicks, 5, true, 0), qt.Equals, OK)
}

func TestAddEntryRejectsChangeTooHighAndTooLow(t *testing.T) {
	c := qt.New(t)
	q := New()
	c.Assert(q.AddEntry(1000, 127, true, 1000), qt.Equals, ChangeTooHigh)
	c.Assert(q.AddEntry(60000, 127, true, -1000), qt.Equals, ChangeTooLow)
}

func TestAddEntryRejectsCumulatedChangeTooLow(t *testing.T) {
	c := qt.New(t)
	q := New()
	// ticks=300, delta=-1 for 110 steps => cumulative -109, last=191 < MinDeltaTicks(200)
	res := q.AddEntry(300, 110, true, -1)
	c.Assert(res, qt.Equals, CumulatedChangeTooLow)
}

func TestAddEntryFullWhenRingSaturated(t *testing.T) {
	c := qt.New(t)
	q := New()
	for i := 0; i < Len-1; i++ {
		c.Assert(q.AddEntry(1000, 1, true, 0), qt.Equals, OK)
	}
	c.Assert(q.IsFull(), qt.IsTrue)
	c.Assert(q.AddEntry(1000, 1, true, 0), qt.Equals, Full)
}

func TestAddStopZeroesTicksAtQueueEnd(t *testing.T) {
	c := qt.New(t)
	q := New()
	c.Assert(q.AddEntry(1000, 5, true, 0), qt.Equals, OK)
	c.Assert(q.AddStop(), qt.Equals, OK)
	c.Assert(q.TicksAtQueueEnd(), qt.Equals, uint16(0))
}

func TestPopInFIFOOrderAndEmptyDetection(t *testing.T) {
	c := qt.New(t)
	q := New()
	c.Assert(q.IsEmpty(), qt.IsTrue)

	q.AddEntry(1000, 3, true, -10)
	q.AddEntry(2000, 4, false, 5)

	e1, ok := q.Pop()
	c.Assert(ok, qt.IsTrue)
	c.Assert(e1.Ticks, qt.Equals, uint16(1000))
	c.Assert(e1.Steps, qt.Equals, uint8(3))

	e2, ok := q.Pop()
	c.Assert(ok, qt.IsTrue)
	c.Assert(e2.Ticks, qt.Equals, uint16(2000))
	c.Assert(e2.ToggleDir, qt.IsTrue) // direction flipped from true to false

	_, ok = q.Pop()
	c.Assert(ok, qt.IsFalse)
	c.Assert(q.IsEmpty(), qt.IsTrue)
}

func TestPositionNowIsLowerBoundUntilDrained(t *testing.T) {
	c := qt.New(t)
	q := New()
	q.AddEntry(1000, 10, true, 0)
	q.AddEntry(1000, 5, true, 0)

	// nothing consumed yet: PositionNow must back out both entries.
	c.Assert(q.PositionNow(), qt.Equals, int32(0))
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(15))

	q.Pop()
	c.Assert(q.PositionNow(), qt.Equals, int32(10))

	q.Pop()
	c.Assert(q.PositionNow(), qt.Equals, int32(15))
}

func TestPositionNowHandlesDirectionToggles(t *testing.T) {
	c := qt.New(t)
	q := New()
	q.AddEntry(1000, 10, true, 0)  // pos: 0 -> 10
	q.AddEntry(1000, 4, false, 0)  // pos: 10 -> 6, toggled
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(6))
	c.Assert(q.PositionNow(), qt.Equals, int32(0))

	q.Pop() // consume the +10 entry
	c.Assert(q.PositionNow(), qt.Equals, int32(10))

	q.Pop() // consume the -4 entry
	c.Assert(q.PositionNow(), qt.Equals, int32(6))
}

func TestAdjustPosAtQueueEndShiftsOrigin(t *testing.T) {
	c := qt.New(t)
	q := New()
	q.AddEntry(1000, 10, true, 0)
	q.AdjustPosAtQueueEnd(100)
	c.Assert(q.PosAtQueueEnd(), qt.Equals, int32(110))
}

func TestUsableCapacityIsLenMinusOne(t *testing.T) {
	c := qt.New(t)
	q := New()
	n := 0
	for q.AddEntry(1000, 1, true, 0) == OK {
		n++
	}
	c.Assert(n, qt.Equals, Len-1)
}
