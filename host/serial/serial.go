package serial

import (
	"io"
)

// Port is the byte stream the tick monitor reads from.
// Open returns a NativePort backed by github.com/tarm/serial.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the firmware UART
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration used by the tick firmware
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200, // USART0 on the Longan Nano header
		ReadTimeout: 500,
	}
}
