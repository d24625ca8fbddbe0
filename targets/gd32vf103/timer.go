//go:build tinygo && gd32vf103

package main

import (
	"errors"
	"runtime/volatile"
	"unsafe"

	"gdtimer/core"
)

// GD32VF103 timer register block, identical for TIMER0..TIMER6
// (basic timers TIMER5/6 leave the channel registers unimplemented)
type timerRegs struct {
	CTL0     volatile.Register32 // 0x00
	CTL1     volatile.Register32 // 0x04
	SMCFG    volatile.Register32 // 0x08
	DMAINTEN volatile.Register32 // 0x0C
	INTF     volatile.Register32 // 0x10
	SWEVG    volatile.Register32 // 0x14
	CHCTL0   volatile.Register32 // 0x18
	CHCTL1   volatile.Register32 // 0x1C
	CHCTL2   volatile.Register32 // 0x20
	CNT      volatile.Register32 // 0x24
	PSC      volatile.Register32 // 0x28
	CAR      volatile.Register32 // 0x2C
}

const (
	ctl0CEN      = 1 << 0
	intfUPIF     = 1 << 0
	dmaintenUPIE = 1 << 0
)

// Timer is an exclusive handle to one timer register block
type Timer struct {
	regs  *timerRegs
	id    core.PeripheralID
	taken bool
}

func timerAt(addr uintptr, id core.PeripheralID) Timer {
	return Timer{regs: (*timerRegs)(unsafe.Pointer(addr)), id: id}
}

var timers = [core.NumTimers]Timer{
	timerAt(0x40012C00, core.TIMER0),
	timerAt(0x40000000, core.TIMER1),
	timerAt(0x40000400, core.TIMER2),
	timerAt(0x40000800, core.TIMER3),
	timerAt(0x40000C00, core.TIMER4),
	timerAt(0x40001000, core.TIMER5),
	timerAt(0x40001400, core.TIMER6),
}

var (
	errNoTimer    = errors.New("illegal timer")
	errTimerTaken = errors.New("timer already taken")
)

// TakeTimer hands out the handle of a timer. Each handle is given out once
// so that only one driver ever owns a register block.
func TakeTimer(id core.PeripheralID) (*Timer, error) {
	if id >= core.NumTimers {
		return nil, errNoTimer
	}
	t := &timers[id]
	if t.taken {
		return nil, errTimerTaken
	}
	t.taken = true
	return t, nil
}

// MustTakeTimer is TakeTimer for board setup code
func MustTakeTimer(id core.PeripheralID) *Timer {
	t, err := TakeTimer(id)
	if err != nil {
		panic(err)
	}
	return t
}

// ID returns the timer instance of this handle
func (t *Timer) ID() core.PeripheralID { return t.id }

// DisableCounter clears CTL0.CEN
func (t *Timer) DisableCounter() { t.regs.CTL0.ClearBits(ctl0CEN) }

// ResetCounter zeroes CNT
func (t *Timer) ResetCounter() { t.regs.CNT.Set(0) }

// Counter reads CNT
func (t *Timer) Counter() uint16 { return uint16(t.regs.CNT.Get()) }

// SetPrescaler writes PSC
func (t *Timer) SetPrescaler(psc uint16) { t.regs.PSC.Set(uint32(psc)) }

// SetAutoReload writes CAR
func (t *Timer) SetAutoReload(car uint16) { t.regs.CAR.Set(uint32(car)) }

// EnableCounter writes CTL0 whole: UPDIS=0 so PSC/CAR apply at once, CEN=1
func (t *Timer) EnableCounter() { t.regs.CTL0.Set(ctl0CEN) }

// UpdateFlag reads INTF.UPIF
func (t *Timer) UpdateFlag() bool { return t.regs.INTF.HasBits(intfUPIF) }

// ClearUpdateFlag writes 0 to UPIF. INTF bits are rc_w0, so writing ones
// elsewhere leaves flags the hardware set meanwhile untouched.
func (t *Timer) ClearUpdateFlag() { t.regs.INTF.Set(^uint32(intfUPIF)) }

// SetUpdateInterrupt sets or clears DMAINTEN.UPIE
func (t *Timer) SetUpdateInterrupt(enabled bool) {
	if enabled {
		t.regs.DMAINTEN.SetBits(dmaintenUPIE)
	} else {
		t.regs.DMAINTEN.ClearBits(dmaintenUPIE)
	}
}
