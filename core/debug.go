package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimerEvent captures a driver event for post-mortem analysis
type TimerEvent struct {
	EventType uint8        // Event type code
	Timer     PeripheralID // Timer instance
	Timeout   uint32       // Requested timeout in Hz
	Value     uint32       // Context-dependent value
}

// Event type codes
const (
	EvtTimerStart   = 1 // Start programmed the registers (Value = psc<<16 | car)
	EvtTimerElapsed = 2 // Poll observed an update event
	EvtTimerRelease = 3 // Release stopped the counter
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Event capture ring buffer (non-blocking, for post-mortem)
	eventRing     [EventRingSize]TimerEvent
	eventRingHead uint8
	eventsEnabled bool = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// SetEventCapture enables or disables the event ring
func SetEventCapture(enabled bool) {
	eventsEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordEvent captures a driver event in the ring buffer
func RecordEvent(eventType uint8, timer PeripheralID, timeout, value uint32) {
	if !eventsEnabled {
		return
	}
	idx := eventRingHead
	eventRing[idx] = TimerEvent{
		EventType: eventType,
		Timer:     timer,
		Timeout:   timeout,
		Value:     value,
	}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the captured events, oldest first
func Events() []TimerEvent {
	out := make([]TimerEvent, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// DumpEventRing outputs the event ring (call on shutdown/error)
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMER] === Event Ring Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.EventType {
		case EvtTimerStart:
			name = "START"
		case EvtTimerElapsed:
			name = "ELAPSED"
		case EvtTimerRelease:
			name = "RELEASE"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TIMER] " + name +
			" timer=" + utoa(uint32(evt.Timer)) +
			" timeout=" + utoa(evt.Timeout) +
			" v=" + utoa(evt.Value))
	}
	debugPrintln("[TIMER] === End Dump ===")
}

// ClearEventRing clears the event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = TimerEvent{}
	}
	eventRingHead = 0
}
