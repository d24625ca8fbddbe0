// Package sim provides host-side models of the GD32VF103 timer block and
// clock unit. They implement the core HAL interfaces so drivers can be
// exercised without hardware.
package sim

import "gdtimer/core"

// CTL0 and INTF bits, same positions as the hardware
const (
	CTL0_CEN      = 1 << 0 // counter enable
	CTL0_UPDIS    = 1 << 1 // update disable
	INTF_UPIF     = 1 << 0 // update interrupt flag
	DMAINTEN_UPIE = 1 << 0 // update interrupt enable
)

// Timer models one timer register block.
//
// Each input clock advances the prescaler; when the prescaler passes PSC
// the counter increments, and when the counter reaches CAR it wraps to zero
// and sets UPIF. One update event therefore spans (PSC+1)*CAR input clocks,
// the nominal core.Divider.Ticks. This is not the silicon rule: the real
// counter also holds the CAR value for one count before wrapping, giving
// (PSC+1)*(CAR+1) clocks (core.Divider.HardwareTicks).
type Timer struct {
	id core.PeripheralID

	CTL0     uint32
	INTF     uint32
	DMAINTEN uint32
	CNT      uint16
	PSC      uint16
	CAR      uint16

	prescaleCount uint32
	updates       uint32
	writes        []string
}

// NewTimer returns a timer block in its power-on state.
func NewTimer(id core.PeripheralID) *Timer {
	return &Timer{id: id}
}

// ID returns the simulated instance
func (t *Timer) ID() core.PeripheralID { return t.id }

// DisableCounter clears CEN
func (t *Timer) DisableCounter() {
	t.CTL0 &^= CTL0_CEN
	t.log("CTL0.CEN=0")
}

// ResetCounter zeroes CNT and the prescaler counter
func (t *Timer) ResetCounter() {
	t.CNT = 0
	t.prescaleCount = 0
	t.log("CNT=0")
}

// Counter reads CNT
func (t *Timer) Counter() uint16 { return t.CNT }

// SetPrescaler writes PSC
func (t *Timer) SetPrescaler(psc uint16) {
	t.PSC = psc
	t.log("PSC")
}

// SetAutoReload writes CAR
func (t *Timer) SetAutoReload(car uint16) {
	t.CAR = car
	t.log("CAR")
}

// EnableCounter writes CTL0 with UPDIS cleared and CEN set
func (t *Timer) EnableCounter() {
	t.CTL0 = CTL0_CEN
	t.log("CTL0.CEN=1")
}

// UpdateFlag reads UPIF
func (t *Timer) UpdateFlag() bool { return t.INTF&INTF_UPIF != 0 }

// ClearUpdateFlag clears UPIF
func (t *Timer) ClearUpdateFlag() { t.INTF &^= INTF_UPIF }

// SetUpdateInterrupt sets or clears UPIE
func (t *Timer) SetUpdateInterrupt(enabled bool) {
	if enabled {
		t.DMAINTEN |= DMAINTEN_UPIE
	} else {
		t.DMAINTEN &^= DMAINTEN_UPIE
	}
}

// Running reports whether CEN is set
func (t *Timer) Running() bool { return t.CTL0&CTL0_CEN != 0 }

// Updates returns the number of update events generated so far
func (t *Timer) Updates() uint32 { return t.updates }

// Writes returns the register write sequence since the last ClearWrites
func (t *Timer) Writes() []string { return t.writes }

// ClearWrites forgets the recorded write sequence
func (t *Timer) ClearWrites() { t.writes = nil }

// Advance feeds n input clock pulses to the timer. Nothing happens while
// the counter is disabled or CAR is zero.
func (t *Timer) Advance(n uint32) {
	if !t.Running() || t.CAR == 0 {
		return
	}
	for ; n > 0; n-- {
		t.prescaleCount++
		if t.prescaleCount <= uint32(t.PSC) {
			continue
		}
		t.prescaleCount = 0

		t.CNT++
		if t.CNT >= t.CAR {
			t.CNT = 0
			t.INTF |= INTF_UPIF
			t.updates++
		}
	}
}

func (t *Timer) log(w string) {
	t.writes = append(t.writes, w)
}
