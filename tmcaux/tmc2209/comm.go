//go:build tinygo

package tmc2209

import (
	"machine"
	"time"
)

// CustomError is a lightweight error type used for TinyGo compatibility.
type CustomError string

func (e CustomError) Error() string {
	return string(e)
}

// UARTComm implements RegisterComm over the chip's single-wire UART,
// the only comm channel the TMC2209 (unlike the TMC5160) exposes.
type UARTComm struct {
	uart    machine.UART
	address uint8
}

// NewUARTComm creates a new UARTComm instance.
func NewUARTComm(uart machine.UART, address uint8) *UARTComm {
	return &UARTComm{uart: uart, address: address}
}

// Setup configures the UART at the chip's fixed 115200 baud default.
func (comm *UARTComm) Setup() error {
	if comm.uart == (machine.UART{}) {
		return CustomError("UART not initialized")
	}
	if err := comm.uart.Configure(machine.UARTConfig{BaudRate: 115200}); err != nil {
		return CustomError("failed to configure UART")
	}
	return nil
}

// WriteRegister sends a register write datagram with a timeout; TinyGo's
// UART has no built-in read/write deadline, so the 100ms timeout is
// enforced here with a goroutine and time.After.
func (comm *UARTComm) WriteRegister(register uint8, value uint32, driverIndex uint8) error {
	buffer := []byte{
		0x05,
		comm.address,
		register | 0x80,
		byte(value >> 24),
		byte(value >> 16),
		byte(value >> 8),
		byte(value),
		0,
	}
	checksum := byte(0)
	for _, b := range buffer[:7] {
		checksum ^= b
	}
	buffer[7] = checksum

	done := make(chan error, 1)
	go func() {
		_, err := comm.uart.Write(buffer)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return CustomError("write failed")
		}
		return nil
	case <-time.After(100 * time.Millisecond):
		return CustomError("write timeout")
	}
}

// ReadRegister sends a register read datagram and waits for the chip's
// 8-byte reply, validating its checksum.
func (comm *UARTComm) ReadRegister(register uint8, driverIndex uint8) (uint32, error) {
	var request [4]byte
	request[0] = 0x05
	request[1] = comm.address
	request[2] = register & 0x7F
	request[3] = request[0] ^ request[1] ^ request[2]

	done := make(chan []byte, 1)
	go func() {
		comm.uart.Write(request[:])
		reply := make([]byte, 8)
		comm.uart.Read(reply)
		done <- reply
	}()

	select {
	case reply := <-done:
		checksum := byte(0)
		for i := 0; i < 7; i++ {
			checksum ^= reply[i]
		}
		if checksum != reply[7] {
			return 0, CustomError("checksum error")
		}
		return uint32(reply[3])<<24 | uint32(reply[4])<<16 | uint32(reply[5])<<8 | uint32(reply[6]), nil
	case <-time.After(100 * time.Millisecond):
		return 0, CustomError("read timeout")
	}
}
