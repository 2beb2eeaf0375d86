//go:build tinygo

package tmc5160

import (
	"machine"
	"time"
)

// CustomError is a lightweight error type used for TinyGo compatibility.
type CustomError string

func (e CustomError) Error() string {
	return string(e)
}

// SPIComm implements RegisterComm for SPI-based communication with a
// TMC5160, the chip's primary (and fastest) comm channel.
type SPIComm struct {
	spi    machine.SPI
	CsPins map[uint8]machine.Pin // CS pin per driver address
}

// NewSPIComm creates a new SPIComm instance.
func NewSPIComm(spi machine.SPI, csPins map[uint8]machine.Pin) *SPIComm {
	return &SPIComm{
		spi:    spi,
		CsPins: csPins,
	}
}

// Setup initializes the SPI communication and configures all CS pins.
func (comm *SPIComm) Setup() error {
	if comm.spi == (machine.SPI{}) {
		return CustomError("SPI not initialized")
	}

	for _, csPin := range comm.CsPins {
		csPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		csPin.High()
	}

	if err := comm.spi.Configure(machine.SPIConfig{LSBFirst: false, Mode: 3}); err != nil {
		return CustomError("failed to configure SPI")
	}
	return nil
}

// WriteRegister sends a register write command to the driver at address.
func (comm *SPIComm) WriteRegister(register uint8, value uint32, driverAddress uint8) error {
	csPin, exists := comm.CsPins[driverAddress]
	if !exists {
		return CustomError("invalid driver address")
	}
	csPin.Low()
	_, err := spiTransfer40(&comm.spi, register|0x80, value)
	csPin.High()
	if err != nil {
		return CustomError("failed to write register")
	}
	return nil
}

// ReadRegister sends a register read command to the driver at address.
// TMC5160's SPI protocol returns the *previous* read's data, so the
// request is sent twice with a settle delay in between.
func (comm *SPIComm) ReadRegister(register uint8, driverAddress uint8) (uint32, error) {
	csPin, exists := comm.CsPins[driverAddress]
	if !exists {
		return 0, CustomError("invalid driver address")
	}

	csPin.Low()
	if _, err := spiTransfer40(&comm.spi, register, 0x00); err != nil {
		csPin.High()
		return 0, CustomError("failed to send read request")
	}
	csPin.High()

	time.Sleep(176 * time.Nanosecond)

	csPin.Low()
	response, err := spiTransfer40(&comm.spi, register, 0x00)
	csPin.High()
	if err != nil {
		return 0, CustomError("failed to read register")
	}
	return response, nil
}

func spiTransfer40(spi *machine.SPI, register uint8, txData uint32) (uint32, error) {
	tx := []byte{
		register,
		byte(txData >> 24),
		byte(txData >> 16),
		byte(txData >> 8),
		byte(txData),
	}
	rx := make([]byte, 5)

	if err := spi.Tx(tx, rx); err != nil {
		return 0, err
	}
	return uint32(rx[1])<<24 | uint32(rx[2])<<16 | uint32(rx[3])<<8 | uint32(rx[4]), nil
}
