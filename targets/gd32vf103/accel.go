//go:build tinygo && gd32vf103

package main

import (
	"machine"

	"gdtimer/core"
	"gdtimer/sampler"
)

const (
	accelTimer = core.TIMER1
	accelRate  = 100 // Hz
)

// The ring is drained on every tick, so it must hold one tick's worth of
// samples (100 at 1Hz) plus the one the phase between the timers can add.
var accelDepth = sampler.DepthFor(accelRate, tickRate)

// initAccel starts 100Hz accelerometer sampling on I2C0 (PB6/PB7)
func initAccel(clocks core.ClockService) *sampler.Sampler {
	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})

	sensor := sampler.NewADXL345(machine.I2C0, sampler.DefaultADXL345Config())
	timer := core.New(MustTakeTimer(accelTimer), core.Hz(accelRate), clocks)
	return sampler.New(timer, sensor, accelDepth)
}

// reportAccel prints the average of the buffered samples
func reportAccel(s *sampler.Sampler, buf []sampler.Sample) []sampler.Sample {
	buf = s.Drain(buf[:0])
	if len(buf) == 0 {
		return buf
	}

	var x, y, z int32
	for _, smp := range buf {
		x += smp.X
		y += smp.Y
		z += smp.Z
	}
	n := int32(len(buf))
	writeLine("accel n=" + core.Utoa(uint32(n)) +
		" x=" + itoa(x/n) + " y=" + itoa(y/n) + " z=" + itoa(z/n) +
		" overruns=" + core.Utoa(s.Overruns()))
	return buf
}

func itoa(v int32) string {
	if v < 0 {
		return "-" + core.Utoa(uint32(-v))
	}
	return core.Utoa(uint32(v))
}
