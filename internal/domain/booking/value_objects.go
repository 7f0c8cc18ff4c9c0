package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

// TimeWindow is the closed booking interval [start, end].
// Invariant: start < end, and start is not in the past at creation time.
// The reference time is always passed in explicitly; this package never
// reads a system clock.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

func NewTimeWindow(start, end, now time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, errs.ErrInvalidTimeWindow
	}
	if start.Before(now) {
		return TimeWindow{}, errs.ErrInvalidTimeWindow
	}

	return TimeWindow{start: start, end: end}, nil
}

// ReconstructTimeWindow restores a persisted window without re-running the
// creation-time checks; a window that was valid when created may be entirely
// in the past by the time it is read back.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time {
	return w.start
}

func (w TimeWindow) End() time.Time {
	return w.end
}

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

func (w TimeWindow) Contains(t time.Time) bool {
	return !w.start.After(t) && !w.end.Before(t)
}

func (w TimeWindow) EndedBefore(t time.Time) bool {
	return w.end.Before(t)
}

func (w TimeWindow) StartsAfter(t time.Time) bool {
	return w.start.After(t)
}
