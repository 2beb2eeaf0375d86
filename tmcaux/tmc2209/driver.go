//go:build tinygo

// Package tmc2209 is a TMC2209 driver filling the same current/microstep
// configuration collaborator role as
// tmcaux/tmc5160: it owns current regulation, chopper/microstep setup,
// and stall/error diagnostics over the chip's single-wire UART, and
// never touches the step/dir pulse path or the ramp planner.
package tmc2209

import (
	"golang.org/x/exp/constraints"
)

// MotorParameters mirrors the chip's IHOLD_IRUN fields, expressed as
// 0-100% of the driver's current range rather than raw 5-bit settings.
type MotorParameters struct {
	RunCurrentPercent  uint8
	HoldCurrentPercent uint8
	HoldDelayPercent   uint8
}

// Config is a motor's physical characterization, analogous to
// tmc5160.Config but without TMC5160's VMAX/TSTEP speed conversion —
// the TMC2209 has no internal ramp generator to keep in sync.
type Config struct {
	MSteps uint16 // microsteps per full step
}

// Common microstepping divisors accepted by Config.MSteps.
const (
	Step1   uint16 = 1
	Step2   uint16 = 2
	Step4   uint16 = 4
	Step8   uint16 = 8
	Step16  uint16 = 16
	Step32  uint16 = 32
	Step64  uint16 = 64
	Step128 uint16 = 128
	Step256 uint16 = 256
)

// DefaultConfig is a reasonable starting point: 16 microsteps.
func DefaultConfig() Config { return Config{MSteps: Step16} }

// Driver is a single TMC2209 on the comm bus at Address, configured
// once via Configure before the paired axis starts moving.
type Driver struct {
	comm    RegisterComm
	address uint8

	motor  MotorParameters
	config Config
}

// NewDriver returns a Driver ready for Configure.
func NewDriver(comm RegisterComm, address uint8, motor MotorParameters, config Config) *Driver {
	return &Driver{comm: comm, address: address, motor: motor, config: config}
}

// Setup initializes the comm channel, when it exposes one (UARTComm
// does; a test double or shared bus comm may not need it).
func (d *Driver) Setup() error {
	if setup, ok := d.comm.(interface{ Setup() error }); ok {
		return setup.Setup()
	}
	return nil
}

func (d *Driver) WriteRegister(reg uint8, value uint32) error {
	if d.comm == nil {
		return CustomError("communication interface not set")
	}
	return d.comm.WriteRegister(reg, value, d.address)
}

func (d *Driver) ReadRegister(reg uint8) (uint32, error) {
	if d.comm == nil {
		return 0, CustomError("communication interface not set")
	}
	return d.comm.ReadRegister(reg, d.address)
}

// Configure writes current regulation and chopper/microstep setup in
// the datasheet's recommended order: global config, current (IHOLD_IRUN),
// then CHOPCONF's microstep resolution field.
func (d *Driver) Configure() error {
	gconf := NewGconf()
	gconf.PdnDisable = 1 // UART-only devices must disable the PDN_UART pin's STEP/DIR fallback
	gconf.MstepRegSelect = 1
	if err := d.WriteRegister(GCONF, gconf.Pack()); err != nil {
		return err
	}

	iholdrun := NewIholdIrun()
	iholdrun.Irun = uint32(percentToCurrentSetting(d.motor.RunCurrentPercent))
	iholdrun.Ihold = uint32(percentToCurrentSetting(d.motor.HoldCurrentPercent))
	iholdrun.Iholddelay = uint32(percentToHoldDelaySetting(d.motor.HoldDelayPercent)) >> 4
	if err := d.WriteRegister(IHOLD_IRUN, iholdrun.Pack()); err != nil {
		return err
	}

	chopconf := NewChopconf()
	chopconf.Toff = 5
	chopconf.Tbl = 2
	chopconf.Hstrt = 4
	chopconf.Hend = 0
	chopconf.Mres = uint32(microstepResolution(d.config.MSteps))
	return d.WriteRegister(CHOPCONF, chopconf.Pack())
}

// microstepResolution converts a microsteps-per-fullstep divisor into
// the chip's 4-bit MRES field (0 = 256 microsteps, 8 = full step).
func microstepResolution(mSteps uint16) uint8 {
	exp := uint8(0)
	for v := mSteps; v > 1; v >>= 1 {
		exp++
	}
	if exp > 8 {
		exp = 8
	}
	return 8 - exp
}

func percentToCurrentSetting(percent uint8) uint8 {
	p := constrain(percent, 0, 100)
	return uint8(uint32(p) * 31 / 100)
}

func percentToHoldDelaySetting(percent uint8) uint8 {
	p := constrain(percent, 0, 100)
	return uint8(uint32(p) * 255 / 100)
}

// VerifyCommunication reads the version field out of IOIN and compares
// it against the chip's known silicon revision.
func (d *Driver) VerifyCommunication() bool {
	io := NewIoin()
	raw, err := d.ReadRegister(io.GetAddress())
	if err != nil {
		return false
	}
	io.Bytes = raw
	io.Unpack(raw)
	return io.Version == expectedVersion
}

// CheckErrorStatus reads DRV_STATUS and returns ok=false when any
// open-load, short, or overtemperature flag is set.
func (d *Driver) CheckErrorStatus() (ok bool, status DrvStatus) {
	raw, err := d.ReadRegister(DRV_STATUS)
	if err != nil {
		return false, DrvStatus{}
	}
	status.Bytes = raw
	status.Unpack(raw)
	errorFlags := status.Ola | status.S2vsa | status.S2vsb | status.Ot | status.S2ga | status.S2gb | status.Olb
	return errorFlags == 0, status
}

// InterfaceTransmissionCount reads IFCNT, which increments on every
// valid UART write the chip accepts — useful for confirming a write
// landed without a dedicated ack.
func (d *Driver) InterfaceTransmissionCount() (uint32, error) {
	ifcnt := NewIfcnt()
	raw, err := d.ReadRegister(ifcnt.GetAddress())
	if err != nil {
		return 0, err
	}
	ifcnt.Bytes = raw
	ifcnt.Unpack(raw)
	return ifcnt.Bytes, nil
}

func constrain[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
