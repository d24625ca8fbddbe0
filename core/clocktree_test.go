package core

import "testing"

func TestTimerClock(t *testing.T) {
	testCases := []struct {
		name   string
		sysclk Hertz
		cfg0   uint32
		id     PeripheralID
		want   Hertz
	}{
		{"reset state TIMER0", MHz(8), 0, TIMER0, MHz(8)},
		{"reset state TIMER5", MHz(8), 0, TIMER5, MHz(8)},
		// 108MHz, AHB /1, APB1 /2 (100), APB2 /1
		{"APB1 halved doubles back", MHz(108), 0x4 << 8, TIMER1, MHz(108)},
		{"APB2 undivided", MHz(108), 0x4 << 8, TIMER0, MHz(108)},
		// APB1 /4 gives 27MHz, timers see 54MHz
		{"APB1 /4", MHz(108), 0x5 << 8, TIMER3, MHz(54)},
		// APB2 /16
		{"APB2 /16", MHz(96), 0x7 << 11, TIMER0, MHz(12)},
		// AHB /2 then APB1 /1
		{"AHB /2", MHz(96), 0x8 << 4, TIMER6, MHz(48)},
		// AHB /64
		{"AHB /64", MHz(64), 0xC << 4, TIMER2, MHz(1)},
		// AHB /512
		{"AHB /512", Hertz(512 * 1000), 0xF << 4, TIMER4, KHz(1)},
	}

	for _, tc := range testCases {
		if got := TimerClock(tc.sysclk, tc.cfg0, tc.id); got != tc.want {
			t.Errorf("%s: TimerClock = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBusBits(t *testing.T) {
	apb2, bit := BusBits(TIMER0)
	if !apb2 || bit != 1<<11 {
		t.Errorf("TIMER0: apb2=%v bit=%#x", apb2, bit)
	}
	for id := TIMER1; id < NumTimers; id++ {
		apb2, bit := BusBits(id)
		if apb2 || bit != 1<<(uint32(id)-1) {
			t.Errorf("TIMER%d: apb2=%v bit=%#x", id, apb2, bit)
		}
	}
}
