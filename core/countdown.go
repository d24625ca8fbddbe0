package core

import "errors"

// ErrReleased is raised when a driver is used after Release.
var ErrReleased = errors.New("timer: driver already released")

// Event is an interrupt source of a countdown timer.
type Event uint8

const (
	// EventTimeOut fires when the countdown period has elapsed
	EventTimeOut Event = iota
)

// Timer is a periodic countdown driver over one timer peripheral.
//
// The driver owns the peripheral from New until Release. Every period the
// hardware raises its update flag; Poll observes and clears it. The counter
// auto-reloads, so a started timer keeps producing periods until it is
// restarted or released.
type Timer[P TimerPeripheral] struct {
	tim      P
	id       PeripheralID
	base     Hertz // input clock captured at construction
	timeout  Hertz // last requested timeout, for introspection only
	divider  Divider
	released bool
}

// New takes ownership of p, gates its clock on, resets it and starts it
// counting at the given timeout frequency.
func New[P TimerPeripheral](p P, timeout Hertz, clocks ClockService) *Timer[P] {
	id := p.ID()
	clocks.Enable(id)
	clocks.Reset(id)

	t := &Timer[P]{
		tim:  p,
		id:   id,
		base: clocks.BaseFrequency(id),
	}
	t.Start(timeout)
	return t
}

// Start (re)programs the timer for the given timeout frequency and restarts
// counting from zero. The counter is stopped while prescale and reload are
// written. A zero timeout panics with ErrZeroTimeout.
func (t *Timer[P]) Start(timeout Hertz) {
	t.mustOwn()

	if err := CheckTimeout(t.base, timeout); err != nil {
		if err == ErrZeroTimeout {
			panic(err)
		}
		DebugPrintln("[TIMER] timer=" + utoa(uint32(t.id)) +
			" timeout=" + timeout.String() + " above base=" + t.base.String() +
			", using shortest period")
	}
	t.timeout = timeout

	t.tim.DisableCounter()
	t.tim.ResetCounter()

	t.divider = ComputeDivider(t.base, timeout)
	t.tim.SetPrescaler(t.divider.Prescaler)
	t.tim.SetAutoReload(t.divider.AutoReload)

	t.tim.EnableCounter()

	RecordEvent(EvtTimerStart, t.id, uint32(timeout),
		uint32(t.divider.Prescaler)<<16|uint32(t.divider.AutoReload))
	if IsDebugEnabled() {
		DebugPrintln("[TIMER] timer=" + utoa(uint32(t.id)) +
			" timeout=" + timeout.String() +
			" psc=" + utoa(uint32(t.divider.Prescaler)) +
			" car=" + utoa(uint32(t.divider.AutoReload)))
	}
}

// Poll reports whether a period has elapsed since the last call that
// returned true. It never blocks; callers wanting to wait spin on it.
func (t *Timer[P]) Poll() bool {
	t.mustOwn()

	if !t.tim.UpdateFlag() {
		return false
	}
	t.tim.ClearUpdateFlag()
	RecordEvent(EvtTimerElapsed, t.id, uint32(t.timeout), 0)
	return true
}

// Listen enables the interrupt request for ev
func (t *Timer[P]) Listen(ev Event) {
	t.mustOwn()
	if ev == EventTimeOut {
		t.tim.SetUpdateInterrupt(true)
	}
}

// Unlisten disables the interrupt request for ev
func (t *Timer[P]) Unlisten(ev Event) {
	t.mustOwn()
	if ev == EventTimeOut {
		t.tim.SetUpdateInterrupt(false)
	}
}

// Release stops the counter and hands the peripheral back. Prescale and
// reload keep their last values and the clock gate stays open. The driver
// cannot be used afterwards.
func (t *Timer[P]) Release() P {
	t.mustOwn()

	t.tim.DisableCounter()
	p := t.tim
	RecordEvent(EvtTimerRelease, t.id, uint32(t.timeout), 0)

	var zero P
	t.tim = zero
	t.released = true
	return p
}

// ID returns the timer instance driven by t.
func (t *Timer[P]) ID() PeripheralID {
	return t.id
}

// Timeout returns the most recently requested timeout frequency.
func (t *Timer[P]) Timeout() Hertz {
	return t.timeout
}

// BaseFrequency returns the timer input clock captured by New.
func (t *Timer[P]) BaseFrequency() Hertz {
	return t.base
}

// Divider returns the register values programmed by the last Start.
func (t *Timer[P]) Divider() Divider {
	return t.divider
}

func (t *Timer[P]) mustOwn() {
	if t.released {
		panic(ErrReleased)
	}
}
