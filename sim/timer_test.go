package sim

import (
	"strings"
	"testing"

	"gdtimer/core"
)

func newTimer(t *testing.T, base, timeout core.Hertz) (*core.Timer[*Timer], *Timer, *Clocks) {
	t.Helper()
	hw := NewTimer(core.TIMER1)
	clocks := NewClocks(base)
	clocks.Attach(hw)
	return core.New(hw, timeout, clocks), hw, clocks
}

func TestNewResetsAndEnables(t *testing.T) {
	hw := NewTimer(core.TIMER3)
	hw.CNT = 99
	hw.INTF = INTF_UPIF
	hw.CTL0 = CTL0_UPDIS
	clocks := NewClocks(core.MHz(8))
	clocks.Attach(hw)

	core.New(hw, core.KHz(1), clocks)

	if !clocks.Enabled(core.TIMER3) || clocks.Resets(core.TIMER3) != 1 {
		t.Errorf("enabled=%v resets=%d", clocks.Enabled(core.TIMER3), clocks.Resets(core.TIMER3))
	}
	if hw.UpdateFlag() {
		t.Error("reset did not clear the update flag")
	}
	if hw.CTL0 != CTL0_CEN {
		t.Errorf("CTL0 = %#x, want CEN only", hw.CTL0)
	}
	if hw.PSC != 0 || hw.CAR != 8000 {
		t.Errorf("PSC=%d CAR=%d, want 0 and 8000", hw.PSC, hw.CAR)
	}
}

func TestWriteOrder(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))
	hw.ClearWrites()

	tim.Start(core.Hz(1))

	want := "CTL0.CEN=0,CNT=0,PSC,CAR,CTL0.CEN=1"
	if got := strings.Join(hw.Writes(), ","); got != want {
		t.Errorf("writes = %s, want %s", got, want)
	}
	if hw.PSC != 122 || hw.CAR != 65040 {
		t.Errorf("PSC=%d CAR=%d, want 122 and 65040", hw.PSC, hw.CAR)
	}
}

func TestFirstPeriod(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))
	period := tim.Divider().Ticks()
	if period != 8000 {
		t.Fatalf("period = %d ticks, want 8000", period)
	}

	hw.Advance(period - 1)
	if tim.Poll() {
		t.Fatal("elapsed one tick early")
	}

	hw.Advance(1)
	if !tim.Poll() {
		t.Fatal("not elapsed after a full period")
	}
	if tim.Poll() {
		t.Fatal("one update reported twice")
	}
}

func TestPeriodicWithPrescale(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.Hz(10))
	d := tim.Divider()
	if d.Prescaler != 12 || d.AutoReload != 61538 {
		t.Fatalf("divider = %+v", d)
	}

	elapsed := 0
	for i := 0; i < 5; i++ {
		hw.Advance(d.Ticks())
		if tim.Poll() {
			elapsed++
		}
	}
	if elapsed != 5 {
		t.Errorf("elapsed %d times over 5 periods", elapsed)
	}
	if hw.Updates() != 5 {
		t.Errorf("hardware generated %d updates", hw.Updates())
	}

	// Missed polls collapse into a single flag
	hw.Advance(3 * d.Ticks())
	if !tim.Poll() || tim.Poll() {
		t.Error("flag should be reported once after several wraps")
	}
}

func TestRestartResetsCount(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))
	hw.Advance(4321)
	if hw.Counter() == 0 {
		t.Fatal("counter did not advance")
	}

	tim.Start(core.KHz(1))
	if hw.Counter() != 0 {
		t.Errorf("counter = %d after restart", hw.Counter())
	}

	hw.Advance(7999)
	if tim.Poll() {
		t.Error("restart did not begin a fresh period")
	}
}

func TestReleaseStops(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))

	got := tim.Release()
	if got != hw {
		t.Fatal("Release returned another handle")
	}
	if hw.Running() {
		t.Error("counter running after Release")
	}
	if hw.PSC != 0 || hw.CAR != 8000 {
		t.Errorf("registers changed on Release: PSC=%d CAR=%d", hw.PSC, hw.CAR)
	}

	hw.Advance(100000)
	if hw.UpdateFlag() {
		t.Error("stopped timer raised the update flag")
	}
}

func TestRewrapAfterRelease(t *testing.T) {
	clocks := NewClocks(core.MHz(8))
	clocks.SetFrequency(core.TIMER1, core.MHz(54))

	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))
	handle := tim.Release()
	clocks.Attach(handle)

	again := core.New(handle, core.KHz(1), clocks)
	if again.BaseFrequency() != core.MHz(54) {
		t.Errorf("base = %d, want 54MHz", again.BaseFrequency())
	}
	if !hw.Running() || hw.CAR != 54000 {
		t.Errorf("running=%v CAR=%d", hw.Running(), hw.CAR)
	}
}

func TestListenSetsUPIE(t *testing.T) {
	tim, hw, _ := newTimer(t, core.MHz(8), core.KHz(1))
	tim.Listen(core.EventTimeOut)
	if hw.DMAINTEN&DMAINTEN_UPIE == 0 {
		t.Error("UPIE not set")
	}
	tim.Unlisten(core.EventTimeOut)
	if hw.DMAINTEN != 0 {
		t.Error("UPIE not cleared")
	}
}
