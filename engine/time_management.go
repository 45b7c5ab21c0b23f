package engine

import "time"

// TimeHandler paces an engine turn: the search itself is not timed, but the
// answer is held back until the configured thinking delay has passed.
type TimeHandler struct {
	start   time.Time
	minimum time.Duration
}

func (th *TimeHandler) StartTime(minimum time.Duration) {
	th.start = time.Now()
	th.minimum = minimum
}

func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

// Remaining is how long the answer should still be held back.
func (th *TimeHandler) Remaining() time.Duration {
	return Max(th.minimum-th.Elapsed(), 0)
}
