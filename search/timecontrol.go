package search

import (
	"time"

	"github.com/b-lovro/TriglavTactician/bitutil"
)

// Limits describes the time-based bound on a Search call: either a
// fixed move time, or total remaining time plus increment. The depth
// bound itself is a separate argument to Search, since a pure depth
// limit carries no time information at all.
type Limits struct {
	MoveTime time.Duration // fixed time for this move; 0 = unset

	Remaining time.Duration // wtime/btime
	Increment time.Duration // winc/binc
	HaveClock bool
}

// thinkingTimeRatio is the divisor applied to the remaining clock time
// to get a soft per-move budget.
const thinkingTimeRatio = 20

// TimeControl tracks the deadline for one search call and is polled
// periodically rather than on every node: checking a monotonic clock
// on every negamax/quiesce call would dominate runtime at high node
// rates.
type TimeControl struct {
	deadline time.Time
	noLimit  bool

	pollCounter uint64
}

// pollInterval is how many poll calls elapse between wall-clock checks.
const pollInterval = 2048

// NewTimeControl derives a soft deadline from Limits: for a
// clock-based limit, soft budget = remaining/thinkingTimeRatio clamped
// to be at least the increment and at most the remaining time. A fixed
// move time is used directly. A pure depth limit with no time
// information never expires.
func NewTimeControl(l Limits) *TimeControl {
	tc := &TimeControl{}
	switch {
	case l.MoveTime > 0:
		tc.deadline = time.Now().Add(l.MoveTime)
	case l.HaveClock:
		soft := l.Remaining / thinkingTimeRatio
		soft = bitutil.Clamp(soft, l.Increment, l.Remaining)
		tc.deadline = time.Now().Add(soft)
	default:
		tc.noLimit = true
	}
	return tc
}

// expired reports whether the deadline has passed. It is intended to
// be called from a polling point inside the search loops, not on
// every node.
func (tc *TimeControl) expired() bool {
	if tc.noLimit {
		return false
	}
	return !time.Now().Before(tc.deadline)
}

// poll increments the internal node counter and checks the clock only
// once every pollInterval calls, returning true on expiry.
func (tc *TimeControl) poll() bool {
	tc.pollCounter++
	if tc.pollCounter%pollInterval != 0 {
		return false
	}
	return tc.expired()
}
