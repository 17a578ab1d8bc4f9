// Package clock is the only source of "now" for admission decisions.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

// NewRealClockIn reports wall time in loc, the zone reservation dates and times are
// written in. A nil loc means the process's local zone.
func NewRealClockIn(loc *time.Location) *RealClock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock stands still until moved.
type MockClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
