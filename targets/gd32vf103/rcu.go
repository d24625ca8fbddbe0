//go:build tinygo && gd32vf103

package main

import (
	"runtime/volatile"
	"unsafe"

	"gdtimer/core"
)

// RCU (reset and clock unit) registers used for timer gating
type rcuRegs struct {
	CTL     volatile.Register32 // 0x00
	CFG0    volatile.Register32 // 0x04
	INT     volatile.Register32 // 0x08
	APB2RST volatile.Register32 // 0x0C
	APB1RST volatile.Register32 // 0x10
	AHBEN   volatile.Register32 // 0x14
	APB2EN  volatile.Register32 // 0x18
	APB1EN  volatile.Register32 // 0x1C
}

var rcu = (*rcuRegs)(unsafe.Pointer(uintptr(0x40021000)))

// RCU implements core.ClockService on the GD32VF103 reset and clock unit.
// The clock tree itself is configured by the runtime before main.
type RCU struct {
	sysclk core.Hertz
}

// NewRCU returns a clock service for a CK_SYS of sysclk
func NewRCU(sysclk core.Hertz) *RCU {
	return &RCU{sysclk: sysclk}
}

// BaseFrequency derives the timer clock from the current AHB/APB prescalers
func (r *RCU) BaseFrequency(id core.PeripheralID) core.Hertz {
	return core.TimerClock(r.sysclk, rcu.CFG0.Get(), id)
}

// Enable opens the timer clock gate
func (r *RCU) Enable(id core.PeripheralID) {
	if apb2, bit := core.BusBits(id); apb2 {
		rcu.APB2EN.SetBits(bit)
	} else {
		rcu.APB1EN.SetBits(bit)
	}
}

// Reset pulses the timer reset line
func (r *RCU) Reset(id core.PeripheralID) {
	if apb2, bit := core.BusBits(id); apb2 {
		rcu.APB2RST.SetBits(bit)
		rcu.APB2RST.ClearBits(bit)
	} else {
		rcu.APB1RST.SetBits(bit)
		rcu.APB1RST.ClearBits(bit)
	}
}
