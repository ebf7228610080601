// Package player drives a solved move sequence into a puzzle board one
// step at a time under a pacing policy.
//
// The package implements an explicit playback state machine:
//
//   - [Player]: Idle -> Running <-> Paused -> Finished controller
//   - [Scheduler]: injected "call me in D" primitive with cancellation
//   - [Pacing]: named delay presets (slow/normal/fast)
//   - [Status]: terminal outcome (solved, aborted, halted)
//
// A Player never blocks a goroutine while paused or between moves; the
// only suspension is a scheduled callback, and at most one step is pending
// at any time. Pausing or resetting cancels the pending step, and a
// generation counter makes a timer that slipped through cancellation a
// no-op rather than a stale move.
//
// # Example
//
//	pl := player.New(player.TimerScheduler{})
//	pl.OnMove(func(mv hanoi.Move, snap [3][]int, count int) { render(snap) })
//	pl.OnFinished(func(st player.Status, err error) { done(st) })
//	pl.Start(5)
package player
