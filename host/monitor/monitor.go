// Package monitor measures the tick rate reported by the firmware.
//
// The firmware prints "tick <seq>" each time its countdown timer elapses.
// Host arrival times are noisy (USB/UART buffering), so only the average
// over many ticks is meaningful; Min and Max show the transport jitter.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"gdtimer/core"
)

// ErrNotTick is returned by Observe for lines that are not tick reports
var ErrNotTick = errors.New("monitor: not a tick line")

// Stats summarises the observed ticks
type Stats struct {
	Ticks  int           // tick lines observed
	Missed uint32        // sequence numbers skipped
	Span   time.Duration // first to last tick
	Min    time.Duration // shortest gap between consecutive lines
	Max    time.Duration // longest gap between consecutive lines
}

// Rate returns the measured tick rate in Hz, counting missed ticks
func (s Stats) Rate() float64 {
	if s.Ticks < 2 || s.Span <= 0 {
		return 0
	}
	periods := float64(s.Ticks-1) + float64(s.Missed)
	return periods / s.Span.Seconds()
}

// ErrorPPM returns the deviation of the measured rate from expect in parts
// per million
func (s Stats) ErrorPPM(expect core.Hertz) float64 {
	if expect == 0 {
		return 0
	}
	return (s.Rate() - float64(expect)) / float64(expect) * 1e6
}

// Monitor accumulates tick observations
type Monitor struct {
	stats   Stats
	first   time.Time
	last    time.Time
	lastSeq uint32
}

// ParseTick extracts the sequence number of a "tick <seq>" line
func ParseTick(line string) (uint32, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != "tick" {
		return 0, ErrNotTick
	}
	seq, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, ErrNotTick
	}
	return uint32(seq), nil
}

// Observe records one line received at the given time
func (m *Monitor) Observe(line string, at time.Time) error {
	seq, err := ParseTick(line)
	if err != nil {
		return err
	}

	if m.stats.Ticks == 0 {
		m.first = at
	} else {
		gap := at.Sub(m.last)
		if m.stats.Ticks == 1 || gap < m.stats.Min {
			m.stats.Min = gap
		}
		if gap > m.stats.Max {
			m.stats.Max = gap
		}
		if seq > m.lastSeq+1 {
			m.stats.Missed += seq - m.lastSeq - 1
		}
	}

	m.stats.Ticks++
	m.stats.Span = at.Sub(m.first)
	m.last = at
	m.lastSeq = seq
	return nil
}

// Stats returns the statistics so far
func (m *Monitor) Stats() Stats {
	return m.stats
}

// Run reads lines from r until limit ticks were seen (0 = no limit), the
// reader ends or ctx is cancelled. Non-tick lines are passed to other when
// it is non-nil.
func Run(ctx context.Context, r io.Reader, now func() time.Time, limit int, other func(string)) (Stats, error) {
	var m Monitor
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return m.Stats(), err
		}

		line := strings.TrimSpace(scanner.Text())
		if err := m.Observe(line, now()); err != nil {
			if other != nil && line != "" {
				other(line)
			}
			continue
		}
		if limit > 0 && m.stats.Ticks >= limit {
			break
		}
	}
	return m.Stats(), scanner.Err()
}
