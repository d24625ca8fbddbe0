//go:build !wasm

package serial

import (
	"fmt"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config

	closeOnce sync.Once
	closeErr  error
}

// Open opens a native serial port
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.Baud <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", cfg.Baud)
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}

	return &NativePort{port: port, cfg: cfg}, nil
}

// Read reads data from the serial port
func (p *NativePort) Read(b []byte) (int, error) {
	return p.port.Read(b)
}

// Write writes data to the serial port
func (p *NativePort) Write(b []byte) (int, error) {
	return p.port.Write(b)
}

// Close closes the serial port. Only the first call reaches the device;
// later and concurrent calls return its result.
func (p *NativePort) Close() error {
	p.closeOnce.Do(func() {
		if p.port != nil {
			p.closeErr = p.port.Close()
		}
	})
	return p.closeErr
}

// Flush discards data received but not yet read, so a monitor starts on
// fresh lines
func (p *NativePort) Flush() error {
	return p.port.Flush()
}
