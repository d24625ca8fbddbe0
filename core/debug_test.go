package core

import (
	"strings"
	"testing"
)

func TestDebugPrintlnGated(t *testing.T) {
	var out []string
	SetDebugWriter(func(s string) { out = append(out, s) })
	defer SetDebugWriter(func(s string) {})

	SetDebugEnabled(false)
	DebugPrintln("hidden")
	SetDebugEnabled(true)
	DebugPrintln("shown")
	SetDebugEnabled(false)

	if len(out) != 1 || out[0] != "shown" {
		t.Errorf("output = %q", out)
	}
}

func TestDumpEventRing(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	var out []string
	SetDebugWriter(func(s string) { out = append(out, s) })
	defer SetDebugWriter(func(s string) {})

	RecordEvent(EvtTimerStart, TIMER5, 1000, 54000)
	RecordEvent(EvtTimerRelease, TIMER5, 1000, 0)
	DumpEventRing()

	dump := strings.Join(out, "\n")
	if !strings.Contains(dump, "START timer=5 timeout=1000 v=54000") ||
		!strings.Contains(dump, "RELEASE timer=5") {
		t.Errorf("dump = %s", dump)
	}
}

func TestEventRingWraps(t *testing.T) {
	ClearEventRing()
	defer ClearEventRing()

	for i := uint32(0); i < EventRingSize+5; i++ {
		RecordEvent(EvtTimerElapsed, TIMER0, 1, i)
	}
	events := Events()
	if len(events) != EventRingSize {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Value != 5 || events[EventRingSize-1].Value != EventRingSize+4 {
		t.Errorf("oldest=%d newest=%d", events[0].Value, events[EventRingSize-1].Value)
	}

	SetEventCapture(false)
	RecordEvent(EvtTimerStart, TIMER0, 1, 0)
	SetEventCapture(true)
	if Events()[EventRingSize-1].EventType != EvtTimerElapsed {
		t.Error("event recorded while capture was disabled")
	}
}

func TestUtoa(t *testing.T) {
	for n, want := range map[uint32]string{0: "0", 7: "7", 65535: "65535", 4294967295: "4294967295"} {
		if got := Utoa(n); got != want {
			t.Errorf("Utoa(%d) = %q", n, got)
		}
	}
}
