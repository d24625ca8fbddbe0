package core

// GD32VF103 RCU_CFG0 prescaler fields
const (
	cfg0AHBPSCShift  = 4
	cfg0AHBPSCMask   = 0xF
	cfg0APB1PSCShift = 8
	cfg0APB2PSCShift = 11
	cfg0APBPSCMask   = 0x7
)

// Timer instances on GD32VF103
const (
	TIMER0 PeripheralID = iota // advanced timer, APB2
	TIMER1
	TIMER2
	TIMER3
	TIMER4
	TIMER5 // basic timer
	TIMER6 // basic timer
	NumTimers
)

// BusBits returns the bus and bit position of a timer in the RCU enable and
// reset registers. TIMER0 is gated on APB2 (bit 11), TIMER1..TIMER6 on APB1
// (bits 0..5).
func BusBits(id PeripheralID) (apb2 bool, bit uint32) {
	if id == TIMER0 {
		return true, 1 << 11
	}
	return false, 1 << (uint32(id) - 1)
}

// ahbDivider decodes the AHBPSC field: 0xxx=1, 1000=2 ... 1011=16,
// 1100=64 ... 1111=512 (there is no /32).
func ahbDivider(field uint32) uint32 {
	if field&0x8 == 0 {
		return 1
	}
	shift := (field & 0x7) + 1
	if shift >= 5 {
		shift++
	}
	return 1 << shift
}

// apbDivider decodes an APBxPSC field: 0xx=1, 100=2, 101=4, 110=8, 111=16.
func apbDivider(field uint32) uint32 {
	if field&0x4 == 0 {
		return 1
	}
	return 1 << ((field & 0x3) + 1)
}

// TimerClock returns the input clock of a timer given the system clock and
// the RCU_CFG0 register value. The timer clock is the APB clock when the
// APB prescaler is 1 and twice the APB clock otherwise.
func TimerClock(sysclk Hertz, cfg0 uint32, id PeripheralID) Hertz {
	hclk := uint32(sysclk) / ahbDivider((cfg0>>cfg0AHBPSCShift)&cfg0AHBPSCMask)

	shift := uint32(cfg0APB1PSCShift)
	if apb2, _ := BusBits(id); apb2 {
		shift = cfg0APB2PSCShift
	}

	div := apbDivider((cfg0 >> shift) & cfg0APBPSCMask)
	if div == 1 {
		return Hertz(hclk)
	}
	return Hertz(hclk / div * 2)
}
