// Package config loads timer plans: a board clock setup plus the timeout
// each timer should run at.
package config

import (
	"encoding/json"
	"fmt"

	"gdtimer/core"
)

// Plan describes the clock setup of a board and the timers it uses
type Plan struct {
	Board    string      `json:"board"`
	SysClock core.Hertz  `json:"sysclk_hz"` // CK_SYS after PLL setup
	CFG0     uint32      `json:"rcu_cfg0"`  // RCU_CFG0 value (AHB/APB prescalers)
	Timers   []TimerPlan `json:"timers"`
}

// TimerPlan is one timer entry of a Plan
type TimerPlan struct {
	Name      string            `json:"name"`
	Timer     core.PeripheralID `json:"timer"`
	TimeoutHz core.Hertz        `json:"timeout_hz"`
	BaseHz    core.Hertz        `json:"base_hz,omitempty"` // overrides the clock tree when set
}

// Entry is a resolved TimerPlan
type Entry struct {
	TimerPlan
	Base     core.Hertz
	Divider  core.Divider
	Actual   core.Hertz // nominal rate, base/((psc+1)*car)
	Hardware float64    // rate the silicon produces, base/((psc+1)*(car+1))
	Warning  error      // non-nil when the timeout cannot be met
}

// LoadPlan parses a JSON plan and returns it with defaults applied
func LoadPlan(jsonData []byte) (*Plan, error) {
	var plan Plan

	if err := json.Unmarshal(jsonData, &plan); err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}

	applyDefaults(&plan)

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(plan *Plan) {
	if plan.Board == "" {
		plan.Board = "gd32vf103"
	}

	// IRC8M drives CK_SYS out of reset
	if plan.SysClock == 0 {
		plan.SysClock = core.MHz(8)
	}

	for i := range plan.Timers {
		if plan.Timers[i].Name == "" {
			plan.Timers[i].Name = "TIMER" + core.Utoa(uint32(plan.Timers[i].Timer))
		}
	}
}

// Validate rejects entries no timer could run
func (p *Plan) Validate() error {
	for _, t := range p.Timers {
		if t.Timer >= core.NumTimers {
			return fmt.Errorf("%s: no such timer %d", t.Name, t.Timer)
		}
		if t.TimeoutHz == 0 {
			return fmt.Errorf("%s: %w", t.Name, core.ErrZeroTimeout)
		}
	}
	return nil
}

// Resolve computes the register values of every timer in the plan
func (p *Plan) Resolve() []Entry {
	entries := make([]Entry, 0, len(p.Timers))
	for _, t := range p.Timers {
		base := t.BaseHz
		if base == 0 {
			base = core.TimerClock(p.SysClock, p.CFG0, t.Timer)
		}

		d := core.ComputeDivider(base, t.TimeoutHz)
		entries = append(entries, Entry{
			TimerPlan: t,
			Base:      base,
			Divider:   d,
			Actual:    d.Output(base),
			Hardware:  d.HardwareRate(base),
			Warning:   core.CheckTimeout(base, t.TimeoutHz),
		})
	}
	return entries
}

// DefaultLonganNanoPlan returns the 108MHz Longan Nano setup with a 1kHz
// system tick on TIMER5 and a 100Hz sampling timer on TIMER1
func DefaultLonganNanoPlan() *Plan {
	return &Plan{
		Board:    "longan-nano",
		SysClock: core.MHz(108),
		CFG0:     0x4 << 8, // APB1 /2, APB2 /1
		Timers: []TimerPlan{
			{Name: "tick", Timer: core.TIMER5, TimeoutHz: core.KHz(1)},
			{Name: "sampler", Timer: core.TIMER1, TimeoutHz: core.Hz(100)},
		},
	}
}
