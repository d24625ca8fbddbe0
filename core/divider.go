package core

import "errors"

// Register limits of the 16-bit prescale and auto-reload registers
const (
	MaxPrescaler  = 0xFFFF
	MaxAutoReload = 0xFFFF
	counterRange  = 1 << 16
)

var (
	// ErrZeroTimeout is raised when a timer is started with a 0Hz timeout
	ErrZeroTimeout = errors.New("timer: timeout frequency must be non-zero")

	// ErrTimeoutAboveBase reports a timeout faster than the timer input
	// clock. Such a timer runs with the shortest possible period instead.
	ErrTimeoutAboveBase = errors.New("timer: timeout frequency exceeds base frequency")
)

// Divider holds the prescale and auto-reload register values for one
// timeout.
type Divider struct {
	Prescaler  uint16
	AutoReload uint16
}

// Ticks returns the nominal number of input clocks per update event,
// (prescale+1)*reload, the quantity ComputeDivider targets.
func (d Divider) Ticks() uint32 {
	return (uint32(d.Prescaler) + 1) * uint32(d.AutoReload)
}

// HardwareTicks returns the input clocks per update event on GD32VF103
// silicon. The up-counter runs 0..reload inclusive, so a period is
// (prescale+1)*(reload+1) clocks, one prescaled count longer than Ticks.
func (d Divider) HardwareTicks() uint64 {
	return (uint64(d.Prescaler) + 1) * (uint64(d.AutoReload) + 1)
}

// HardwareRate returns the update event rate the silicon produces from
// base, in Hz.
func (d Divider) HardwareRate(base Hertz) float64 {
	return float64(base) / float64(d.HardwareTicks())
}

// Output returns the nominal update event rate, base/Ticks.
func (d Divider) Output(base Hertz) Hertz {
	ticks := d.Ticks()
	if ticks == 0 {
		return 0
	}
	return Hertz(uint32(base) / ticks)
}

// CheckTimeout validates a requested timeout against the timer input clock.
func CheckTimeout(base, timeout Hertz) error {
	switch {
	case timeout == 0:
		return ErrZeroTimeout
	case timeout > base:
		return ErrTimeoutAboveBase
	}
	return nil
}

// ComputeDivider translates a timeout frequency into register values.
//
// totalTicks = base / timeout, prescale is the smallest value that lets the
// reload fit in 16 bits (ceil(totalTicks/65536) - 1), and reload is
// totalTicks / (prescale+1). Integer truncation of the reload loses at most
// prescale counts, so the produced period is short by less than one part in
// prescale+1 of the requested one.
//
// Clamps: a timeout above base floors totalTicks to 1 (reload 1), and a
// reload of 65536, reached when totalTicks is an exact multiple of 65536,
// saturates at 65535. A zero timeout panics with ErrZeroTimeout.
func ComputeDivider(base, timeout Hertz) Divider {
	if timeout == 0 {
		panic(ErrZeroTimeout)
	}

	ticks := uint64(base) / uint64(timeout)
	if ticks == 0 {
		ticks = 1
	}

	psc := (ticks+counterRange-1)/counterRange - 1
	if psc > MaxPrescaler {
		psc = MaxPrescaler
	}

	car := ticks / (psc + 1)
	if car > MaxAutoReload {
		car = MaxAutoReload
	}
	if car < 1 {
		car = 1
	}

	return Divider{
		Prescaler:  uint16(psc),
		AutoReload: uint16(car),
	}
}
