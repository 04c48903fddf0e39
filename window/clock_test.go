package window

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

// fakeClock drives the windows deterministically in tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func TestSinceSaturates(t *testing.T) {
	now := time.Now()
	assert.Equal(t, since(now.Add(time.Second), now), time.Second)
	assert.Equal(t, since(now, now), time.Duration(0))
	assert.Equal(t, since(now.Add(-time.Second), now), time.Duration(0))
}
