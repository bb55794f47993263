// Package schedule provides one-shot deferred actions that can be canceled
// before they fire.
//
// The owner of a Handle is responsible for canceling it when the owner goes
// away. Callbacks should capture only what they need to mutate, never the
// whole owner, so a late callback cannot resurrect a discarded object.
package schedule

import "time"

// Handle is the cancellation token for one scheduled action.
type Handle interface {
	// Cancel prevents the action from running. It reports true when the call
	// stopped the action, false when it already ran or was already canceled.
	Cancel() bool
}

// Scheduler arms one-shot actions.
type Scheduler interface {
	// AfterFunc runs fn once, after d has elapsed, unless the returned
	// Handle is canceled first.
	AfterFunc(d time.Duration, fn func()) Handle
}

// Func adapts a plain function to the Scheduler interface.
type Func func(d time.Duration, fn func()) Handle

// AfterFunc calls f(d, fn).
func (f Func) AfterFunc(d time.Duration, fn func()) Handle {
	return f(d, fn)
}

// Real returns a Scheduler backed by runtime timers. In a browser build the
// callback is delivered through the JS event loop.
func Real() Scheduler {
	return realScheduler{}
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}
