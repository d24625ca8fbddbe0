package sim

import "gdtimer/core"

// Clocks is a ClockService with a fixed input clock per timer.
type Clocks struct {
	freqs   map[core.PeripheralID]core.Hertz
	def     core.Hertz
	enabled map[core.PeripheralID]bool
	resets  map[core.PeripheralID]int
	timers  map[core.PeripheralID]*Timer
}

// NewClocks returns a clock service reporting base for every timer.
func NewClocks(base core.Hertz) *Clocks {
	return &Clocks{
		freqs:   make(map[core.PeripheralID]core.Hertz),
		def:     base,
		enabled: make(map[core.PeripheralID]bool),
		resets:  make(map[core.PeripheralID]int),
		timers:  make(map[core.PeripheralID]*Timer),
	}
}

// SetFrequency overrides the input clock of one timer
func (c *Clocks) SetFrequency(id core.PeripheralID, f core.Hertz) {
	c.freqs[id] = f
}

// Attach lets Reset return t to its power-on state
func (c *Clocks) Attach(t *Timer) {
	c.timers[t.ID()] = t
}

// BaseFrequency implements core.ClockService
func (c *Clocks) BaseFrequency(id core.PeripheralID) core.Hertz {
	if f, ok := c.freqs[id]; ok {
		return f
	}
	return c.def
}

// Enable implements core.ClockService
func (c *Clocks) Enable(id core.PeripheralID) {
	c.enabled[id] = true
}

// Reset implements core.ClockService
func (c *Clocks) Reset(id core.PeripheralID) {
	c.resets[id]++
	if t, ok := c.timers[id]; ok {
		*t = Timer{id: id}
	}
}

// Enabled reports whether the clock gate of id was opened
func (c *Clocks) Enabled(id core.PeripheralID) bool {
	return c.enabled[id]
}

// Resets returns how many times id was reset
func (c *Clocks) Resets(id core.PeripheralID) int {
	return c.resets[id]
}
