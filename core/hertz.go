package core

import (
	"math"
	"time"
)

// Hertz is a frequency in cycles per second.
type Hertz uint32

// Hz returns n as a Hertz value.
func Hz(n uint32) Hertz { return Hertz(n) }

// MaxHertz is the largest representable frequency, about 4.29GHz
const MaxHertz = Hertz(math.MaxUint32)

// KHz returns n kilohertz, saturating at MaxHertz.
func KHz(n uint32) Hertz { return scale(n, 1000) }

// MHz returns n megahertz, saturating at MaxHertz.
func MHz(n uint32) Hertz { return scale(n, 1000000) }

func scale(n, unit uint32) Hertz {
	f := uint64(n) * uint64(unit)
	if f > math.MaxUint32 {
		return MaxHertz
	}
	return Hertz(f)
}

// Period returns the duration of one cycle. A zero frequency has no period
// and returns 0.
func (f Hertz) Period() time.Duration {
	if f == 0 {
		return 0
	}
	return time.Second / time.Duration(f)
}

// String formats the frequency as "<n>Hz" without fmt
func (f Hertz) String() string {
	return utoa(uint32(f)) + "Hz"
}
