//go:build tinygo && gd32vf103

package main

import (
	"machine"

	"gdtimer/core"
	"gdtimer/sampler"
)

const (
	tickTimer   = core.TIMER5
	tickRate    = 1 // Hz, matches the host monitor default
	debugOutput = true
)

func writeLine(s string) {
	machine.Serial.Write([]byte(s + "\r\n"))
}

func main() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	core.SetDebugWriter(writeLine)
	core.SetDebugEnabled(debugOutput)

	clocks := NewRCU(core.Hertz(machine.CPUFrequency()))
	tick := core.New(MustTakeTimer(tickTimer), core.Hz(tickRate), clocks)
	accel := initAccel(clocks)
	samples := make([]sampler.Sample, 0, accelDepth)

	var seq uint32
	on := false
	for {
		if tick.Poll() {
			on = !on
			led.Set(on)
			writeLine("tick " + core.Utoa(seq))
			seq++

			samples = reportAccel(accel, samples)
		}
		accel.Poll()
	}
}
