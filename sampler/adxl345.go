package sampler

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/adxl345"
)

// ADXL345Config describes an accelerometer on an I2C bus
type ADXL345Config struct {
	Address uint16 // 0x53 with SDO low, 0x1D with SDO high
	Rate    adxl345.Rate
	Range   adxl345.Range
}

// DefaultADXL345Config returns 100Hz output at +-16g on address 0x53
func DefaultADXL345Config() ADXL345Config {
	return ADXL345Config{
		Address: 0x53,
		Rate:    adxl345.RATE_100HZ,
		Range:   adxl345.RANGE_16G,
	}
}

// NewADXL345 configures an ADXL345 for use as a sampler Accelerometer.
// The device data rate should be at least the timer rate, otherwise
// consecutive samples repeat readings.
func NewADXL345(bus drivers.I2C, cfg ADXL345Config) *adxl345.Device {
	sensor := adxl345.New(bus)
	sensor.Address = cfg.Address

	sensor.Configure()
	sensor.SetRate(cfg.Rate)
	sensor.SetRange(cfg.Range)

	return &sensor
}
