package spawn

import (
	"fmt"
	"time"
)

// IntervalPolicy computes the inter-spawn interval for a level from its
// spawn window, the resolved total, and the count still pending.
type IntervalPolicy func(window time.Duration, resolved, pending int) time.Duration

// ConstantInterval divides the window by the resolved total, so the
// spawn rate stays fixed for the whole level regardless of how many
// spawns remain. This is the historical behavior and the default.
func ConstantInterval(window time.Duration, resolved, pending int) time.Duration {
	if resolved < 1 {
		return 0
	}
	return window / time.Duration(resolved)
}

// RemainingInterval divides the window by the count still pending, so
// the interval stretches as the pool drains and late spawns spread out
// instead of holding the initial rate.
func RemainingInterval(window time.Duration, resolved, pending int) time.Duration {
	if pending < 1 {
		return 0
	}
	return window / time.Duration(pending)
}

// WrapPolicy decides what happens when the level list is exhausted.
type WrapPolicy int

const (
	// WrapRepeatLast replays the final level forever. Default.
	WrapRepeatLast WrapPolicy = iota
	// WrapLoopFromStart restarts from the first level.
	WrapLoopFromStart
	// WrapStop halts the scheduler; further ticks are no-ops.
	WrapStop
)

// String returns the policy's config-file name.
func (p WrapPolicy) String() string {
	switch p {
	case WrapRepeatLast:
		return "repeat_last"
	case WrapLoopFromStart:
		return "loop_from_start"
	case WrapStop:
		return "stop"
	default:
		return fmt.Sprintf("WrapPolicy(%d)", int(p))
	}
}

// ParseWrapPolicy converts a config string into a WrapPolicy.
// Empty string selects the default.
func ParseWrapPolicy(s string) (WrapPolicy, error) {
	switch s {
	case "", "repeat_last":
		return WrapRepeatLast, nil
	case "loop_from_start":
		return WrapLoopFromStart, nil
	case "stop":
		return WrapStop, nil
	default:
		return WrapRepeatLast, fmt.Errorf("unknown wrap policy %q", s)
	}
}

// ParseIntervalPolicy converts a config string into an IntervalPolicy.
// Empty string selects the default.
func ParseIntervalPolicy(s string) (IntervalPolicy, error) {
	switch s {
	case "", "constant":
		return ConstantInterval, nil
	case "remaining":
		return RemainingInterval, nil
	default:
		return nil, fmt.Errorf("unknown interval policy %q", s)
	}
}
