package game

import (
	"sync"
	"time"
)

// timerState tracks the round timer's lifecycle explicitly so cancellation
// and firing cannot race: whichever transition happens first wins, the other
// becomes a no-op.
type timerState int

const (
	timerScheduled timerState = iota
	timerCancelled
	timerFired
)

// roundTimer is a one-shot cancellable delayed callback. A session owns at
// most one live roundTimer; starting a new round replaces (cancels) the old
// one. The callback itself still re-checks the session's pending answer, so
// even a timer that slips through firing is absorbed there.
type roundTimer struct {
	mu    sync.Mutex
	state timerState
	timer *time.Timer
}

// newRoundTimer schedules fire to run after d unless Cancel wins the race
func newRoundTimer(d time.Duration, fire func()) *roundTimer {
	rt := &roundTimer{state: timerScheduled}
	rt.timer = time.AfterFunc(d, func() {
		rt.mu.Lock()
		if rt.state != timerScheduled {
			rt.mu.Unlock()
			return
		}
		rt.state = timerFired
		rt.mu.Unlock()
		fire()
	})
	return rt
}

// Cancel stops the timer. It returns true when the timer had not fired yet;
// cancelling an already-fired or already-cancelled timer is a safe no-op.
func (rt *roundTimer) Cancel() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.state != timerScheduled {
		return false
	}
	rt.state = timerCancelled
	rt.timer.Stop()
	return true
}
