// Package clock supplies the reference time that every temporal rule in the
// booking core receives explicitly: window validation, bucket classification
// and comment eligibility all take their "now" from here instead of calling
// time.Now inline.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock. Wired in production.
type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock holds a fixed instant that tests move explicitly.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Add shifts the clock by d; a negative duration moves it back.
func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
