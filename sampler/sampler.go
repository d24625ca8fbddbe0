// Package sampler takes sensor readings at the rate of a countdown timer.
//
// The sampler never blocks: each call to Poll checks the timer once and
// reads the sensor only when a period has elapsed, so it can share a main
// loop with other polled work.
package sampler

// Poller is satisfied by *core.Timer
type Poller interface {
	Poll() bool
}

// Accelerometer is a three-axis sensor returning raw counts
type Accelerometer interface {
	ReadRawAcceleration() (x, y, z int32)
}

// Sample is one reading tagged with its period number
type Sample struct {
	Seq     uint32
	X, Y, Z int32
}

// DepthFor returns the ring depth needed to lose no readings when sampling
// at sampleRate and draining at drainRate: ceil(sampleRate/drainRate)
// readings per drain, plus one because the two timers run unaligned and a
// drain interval can span one extra sampling edge. drainRate must be
// non-zero.
func DepthFor(sampleRate, drainRate uint32) int {
	if drainRate == 0 {
		panic("sampler: drain rate must be non-zero")
	}
	return int((sampleRate+drainRate-1)/drainRate) + 1
}

// Sampler buffers one reading per timer period in a fixed ring.
type Sampler struct {
	timer Poller
	dev   Accelerometer

	ring  []Sample
	head  int // next write position
	count int

	seq      uint32
	overruns uint32
}

// New returns a sampler keeping up to depth readings. depth must be
// positive.
func New(timer Poller, dev Accelerometer, depth int) *Sampler {
	if depth <= 0 {
		panic("sampler: depth must be positive")
	}
	return &Sampler{
		timer: timer,
		dev:   dev,
		ring:  make([]Sample, depth),
	}
}

// Poll takes a reading if the timer period has elapsed and reports whether
// it did. When the ring is full the oldest reading is overwritten and
// counted as an overrun.
func (s *Sampler) Poll() bool {
	if !s.timer.Poll() {
		return false
	}

	x, y, z := s.dev.ReadRawAcceleration()
	s.ring[s.head] = Sample{Seq: s.seq, X: x, Y: y, Z: z}
	s.seq++
	s.head = (s.head + 1) % len(s.ring)

	if s.count == len(s.ring) {
		s.overruns++
	} else {
		s.count++
	}
	return true
}

// Len returns the number of buffered readings
func (s *Sampler) Len() int { return s.count }

// Overruns returns how many readings were dropped because the ring was full
func (s *Sampler) Overruns() uint32 { return s.overruns }

// Drain appends the buffered readings, oldest first, to dst and empties the
// ring.
func (s *Sampler) Drain(dst []Sample) []Sample {
	start := s.head - s.count
	if start < 0 {
		start += len(s.ring)
	}
	for i := 0; i < s.count; i++ {
		dst = append(dst, s.ring[(start+i)%len(s.ring)])
	}
	s.count = 0
	return dst
}
