//go:build tinygo

package backend

import "machine"

// DirPin is a DirectionSetter backed by a real GPIO pin, its level
// inverted on every ToggleDirection call the bound backend makes when it pops an
// entry with its ToggleDir bit set.
type DirPin struct {
	pin machine.Pin
}

// NewDirPin configures pin as a digital output and returns a
// DirectionSetter ready to bind to an Axis.
func NewDirPin(pin machine.Pin) *DirPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &DirPin{pin: pin}
}

func (d *DirPin) ToggleDirection() { d.pin.Set(!d.pin.Get()) }
