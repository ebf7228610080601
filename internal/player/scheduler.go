package player

import "time"

// Scheduler defers a callback by a delay. The returned cancel function
// stops delivery if the callback has not fired yet; cancelling after the
// fact is a no-op. Implementations may invoke the callback on any
// goroutine.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules on real wall-clock timers.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
