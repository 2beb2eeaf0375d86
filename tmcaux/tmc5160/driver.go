//go:build tinygo

// Package tmc5160 is a TMC5160 current/microstep configuration
// collaborator an axis.Axis can hold
// alongside its step/dir pulse path: Driver owns current regulation and
// chopper configuration; it never touches the queue or the ramp
// planner. Speed/acceleration stay the axis's business — SyncSpeed only
// mirrors the axis's peak rate into the chip's own ramp-generator
// velocity registers (VSTART/VMAX/V1); the velocity-dependent
// driver-feature thresholds (TPWMTHRS/THIGH) are not written.
package tmc5160

import (
	"github.com/orsinium-labs/tinymath"
	"golang.org/x/exp/constraints"
	"machine"
)

const maxVMAX = 8388096

// MotorDirection selects the chip's shaft-rotation sense.
type MotorDirection uint8

const (
	Clockwise MotorDirection = iota
	CounterClockwise
)

// Common microstepping divisors accepted by Config.Microsteps.
const (
	Step1   uint8 = 1
	Step2   uint8 = 2
	Step4   uint8 = 4
	Step8   uint8 = 8
	Step16  uint8 = 16
	Step32  uint8 = 32
	Step64  uint8 = 64
	Step128 uint8 = 128
)

// PowerStageParameters mirrors the chip's DRV_CONF fields.
type PowerStageParameters struct {
	DrvStrength uint8
	BBMTime     uint8
	BBMClks     uint8
}

// MotorParameters mirrors GLOBAL_SCALER/IHOLD_IRUN/PWMCONF fields.
type MotorParameters struct {
	GlobalScaler   uint16
	IHold          uint8
	IRun           uint8
	IHoldDelay     uint8
	PwmGradInitial uint16
	PwmOfsInitial  uint16
	Freewheeling   uint8
}

// Config is a motor's physical characterization, used to convert a
// desired step rate (Hz) into the chip's internal VMAX/TSTEP units.
type Config struct {
	GearRatio float32
	MSteps    uint8 // microsteps per full step
	Fclk      uint8 // internal clock, MHz
}

// DefaultConfig is a reasonable starting point: no gearing, 16
// microsteps, the chip's default 12MHz internal oscillator.
func DefaultConfig() Config {
	return Config{GearRatio: 1.0, MSteps: Step16, Fclk: 12}
}

// Driver is a single TMC5160 on the comm bus at Address, configured
// once via Configure before the paired axis starts moving.
type Driver struct {
	comm      RegisterComm
	address   uint8
	enablePin machine.Pin

	power  PowerStageParameters
	motor  MotorParameters
	config Config
	dir    MotorDirection
}

// NewDriver returns a Driver ready for Configure.
func NewDriver(comm RegisterComm, address uint8, enablePin machine.Pin, power PowerStageParameters, motor MotorParameters, config Config, dir MotorDirection) *Driver {
	return &Driver{
		comm:      comm,
		address:   address,
		enablePin: enablePin,
		power:     power,
		motor:     motor,
		config:    config,
		dir:       dir,
	}
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

// Configure implements the current/microstep/chopper setup the chip
// needs once before motion starts: power stage, current regulation,
// stealthChop PWM autotuning, and chopper timing, in that order,
// matching the datasheet's recommended bring-up sequence.
func (d *Driver) Configure() error {
	gstat := NewGSTAT()
	gstat.Reset = true
	gstat.UvCp = true
	if err := d.WriteRegister(GSTAT, gstat.Pack()); err != nil {
		return err
	}

	drvConf := NewDRV_CONF()
	drvConf.DrvStrength = constrain(d.power.DrvStrength, 0, 3)
	drvConf.BBMTime = constrain(d.power.BBMTime, 0, 24)
	drvConf.BBMClks = constrain(d.power.BBMClks, 0, 15)
	if err := d.WriteRegister(DRV_CONF, drvConf.Pack()); err != nil {
		return err
	}

	if err := d.WriteRegister(GLOBAL_SCALER, uint32(constrain(d.motor.GlobalScaler, 32, 256))); err != nil {
		return err
	}

	iholdrun := NewIHOLD_IRUN()
	iholdrun.Ihold = constrain(d.motor.IHold, 0, 31)
	iholdrun.Irun = constrain(d.motor.IRun, 0, 31)
	iholdrun.IholdDelay = constrain(d.motor.IHoldDelay, 0, 15)
	if err := d.WriteRegister(IHOLD_IRUN, iholdrun.Pack()); err != nil {
		return err
	}

	pwmconf := NewPWMCONF()
	if err := d.WriteRegister(PWMCONF, 0xC40C001E); err != nil {
		return err
	}
	pwmconf.PwmAutoscale = false
	if int(d.config.Fclk)*1_000_000 > DEFAULT_F_CLK {
		pwmconf.PwmFreq = 0
	} else {
		pwmconf.PwmFreq = 0b01
	}
	pwmconf.PwmGrad = uint8(d.motor.PwmGradInitial)
	pwmconf.PwmOfs = uint8(d.motor.PwmOfsInitial)
	pwmconf.Freewheel = d.motor.Freewheeling
	if err := d.WriteRegister(PWMCONF, pwmconf.Pack()); err != nil {
		return err
	}
	pwmconf.PwmAutoscale = true
	pwmconf.PwmAutograd = true
	if err := d.WriteRegister(PWMCONF, pwmconf.Pack()); err != nil {
		return err
	}

	chopconf := NewCHOPCONF()
	chopconf.Toff = 5
	chopconf.Tbl = 2
	chopconf.HstrtTfd = 4
	chopconf.HendOffset = 0
	chopconf.Mres = microstepResolution(d.config.MSteps)
	if err := d.WriteRegister(CHOPCONF, chopconf.Pack()); err != nil {
		return err
	}

	rampMode := NewRAMPMODE(d.comm, d.address)
	if err := rampMode.SetMode(PositioningMode); err != nil {
		return err
	}

	gconf := NewGCONF()
	gconf.EnPwmMode = true
	gconf.Shaft = d.dir == Clockwise
	if err := d.WriteRegister(GCONF, gconf.Pack()); err != nil {
		return err
	}

	// D1 must not be 0 in positioning mode even with V1=0.
	return d.WriteRegister(D_1, 100)
}

// microstepResolution converts a microsteps-per-fullstep divisor into
// the chip's 4-bit MRES field (0 = 256 microsteps, 8 = full step).
func microstepResolution(mSteps uint8) uint8 {
	exp := uint8(0)
	for v := mSteps; v > 1; v >>= 1 {
		exp++
	}
	if exp > 8 {
		exp = 8
	}
	return 8 - exp
}

// tRef is the chip's internal velocity reference period in seconds.
func (d *Driver) tRef() float32 {
	return 16777216 / (float32(d.config.Fclk) * 1_000_000)
}

// hzToVMAX converts a step rate in Hz to the chip's VMAX units.
func (d *Driver) hzToVMAX(hz float32) uint32 {
	v := tinymath.Round(hz * d.config.GearRatio * d.tRef())
	return constrain(uint32(v), 0, maxVMAX)
}

// SyncSpeed mirrors the axis's current peak speed (derived from
// min_step_us) into the chip's ramp-generator velocity thresholds, so
// the two step sources (software ramp via step/dir, chip's own
// stealthChop/coolStep velocity-dependent feature switching) agree on
// what "peak speed" means. Satisfies axis.SpeedSyncer, so a paired
// axis.Axis calls this once per SetSpeed; never call it from the pulse
// path.
func (d *Driver) SyncSpeed(peakHz float32) error {
	vmax := d.hzToVMAX(peakHz)
	if err := d.WriteRegister(VSTART, 0); err != nil {
		return err
	}
	if err := d.WriteRegister(VMAX, vmax); err != nil {
		return err
	}
	return d.WriteRegister(V_1, tinymath.Min(0xFFFFF, float32(vmax)/2))
}

// DumpRegisters reads a handful of commonly-useful status/config
// registers and prints their values, for bring-up debugging.
func (d *Driver) DumpRegisters() error {
	registers := []uint8{
		GCONF, CHOPCONF, GSTAT, DRV_STATUS, FACTORY_CONF, IOIN, LOST_STEPS, MSCNT,
		MSCURACT, OTP_READ, PWM_SCALE, PWM_AUTO, TSTEP,
	}
	names := map[uint8]string{
		GCONF: "GCONF", CHOPCONF: "CHOPCONF", GSTAT: "GSTAT", DRV_STATUS: "DRV_STATUS",
		FACTORY_CONF: "FACTORY_CONF", IOIN: "IOIN", LOST_STEPS: "LOST_STEPS", MSCNT: "MSCNT",
		MSCURACT: "MSCURACT", OTP_READ: "OTP_READ", PWM_SCALE: "PWM_SCALE", PWM_AUTO: "PWM_AUTO",
		TSTEP: "TSTEP",
	}
	for _, reg := range registers {
		val, err := d.ReadRegister(reg)
		if err != nil {
			println("tmc5160: error reading", names[reg], err.Error())
			return err
		}
		println("tmc5160:", names[reg], "=", val)
	}
	return nil
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
