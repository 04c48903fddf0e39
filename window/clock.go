package window

import "time"

// A Clock reads the current time. Both windows take one at construction so
// tests can drive time deterministically; time.Time carries a monotonic
// reading, which is what the RTT and interval math relies on.
type Clock interface {
	Now() time.Time
}

type stdClock struct{}

func (stdClock) Now() time.Time { return time.Now() }

// since returns now - earlier, floored at zero so clock anomalies never
// produce a negative interval.
func since(now, earlier time.Time) time.Duration {
	d := now.Sub(earlier)
	if d < 0 {
		return 0
	}
	return d
}
