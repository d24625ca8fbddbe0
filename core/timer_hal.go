package core

// PeripheralID identifies one timer instance (0-6 on GD32VF103).
type PeripheralID uint8

// TimerPeripheral is the register-level contract of one timer block.
// Target code implements it over memory-mapped registers; host code over
// a simulation.
type TimerPeripheral interface {
	// ID returns the instance this handle owns
	ID() PeripheralID

	// DisableCounter clears the counter-enable bit
	DisableCounter()

	// ResetCounter writes zero to the current count register
	ResetCounter()

	// Counter reads the current count register
	Counter() uint16

	// SetPrescaler writes the 16-bit prescale register
	SetPrescaler(psc uint16)

	// SetAutoReload writes the 16-bit auto-reload register
	SetAutoReload(car uint16)

	// EnableCounter writes the control register with update-disable
	// cleared and counter-enable set
	EnableCounter()

	// UpdateFlag reports the update interrupt flag
	UpdateFlag() bool

	// ClearUpdateFlag clears the update interrupt flag (write-to-clear)
	ClearUpdateFlag()

	// SetUpdateInterrupt enables or disables the update interrupt request
	SetUpdateInterrupt(enabled bool)
}

// ClockService reports timer input clocks and gates timers on their bus.
// All calls are synchronous and cannot fail.
type ClockService interface {
	// BaseFrequency returns the input clock of the given timer
	BaseFrequency(id PeripheralID) Hertz

	// Enable opens the bus clock gate of the given timer
	Enable(id PeripheralID)

	// Reset returns the timer registers to their power-on state
	Reset(id PeripheralID)
}
