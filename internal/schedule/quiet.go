// Package schedule implements the daily quiet window during which scheduled
// runs exit without checking the forecast.
package schedule

import (
	"fmt"
	"time"
)

// Window is a daily quiet window. It may wrap past midnight, e.g. the
// default 22:00-07:00 pauses overnight runs while the 07:00 run proceeds.
type Window struct {
	start int // minutes since midnight, inclusive
	end   int // minutes since midnight, exclusive
}

// Parse parses a window in "HH:MM-HH:MM" form. An empty string yields a nil
// window, which contains nothing.
func Parse(s string) (*Window, error) {
	if s == "" {
		return nil, nil
	}

	var startHour, startMin, endHour, endMin int
	if _, err := fmt.Sscanf(s, "%d:%d-%d:%d", &startHour, &startMin, &endHour, &endMin); err != nil {
		return nil, fmt.Errorf("invalid quiet hours %q (expected HH:MM-HH:MM)", s)
	}

	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 ||
		startMin < 0 || startMin > 59 || endMin < 0 || endMin > 59 {
		return nil, fmt.Errorf("invalid quiet hours %q (hours 0-23, minutes 0-59)", s)
	}

	return &Window{
		start: startHour*60 + startMin,
		end:   endHour*60 + endMin,
	}, nil
}

// Contains reports whether t falls inside the window.
func (w *Window) Contains(t time.Time) bool {
	if w == nil {
		return false
	}

	m := t.Hour()*60 + t.Minute()
	if w.start <= w.end {
		return m >= w.start && m < w.end
	}
	// Wraps past midnight
	return m >= w.start || m < w.end
}

func (w *Window) String() string {
	if w == nil {
		return "disabled"
	}
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.start/60, w.start%60, w.end/60, w.end%60)
}
