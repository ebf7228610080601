// Package viz provides the terminal animation for the Tower of Hanoi
// solver.
//
// The package implements the front end as a Bubble Tea program:
//
//   - [Model]: live board view driven by player callbacks
//   - [RunInteractive]: config screen (disks, speed, theme) then animation
//   - [RunLive]: animation only, settings from flags or config file
//   - Theme selection with the original solver's colour-blind palette
//
// # Key Bindings
//
//	Enter - Start solving
//	Space - Pause/Resume
//	R     - Reset the puzzle
//	+/-   - Disk count (between runs)
//	1/2/3 - Slow/Normal/Fast pacing
//	T     - Cycle colour themes
//	?     - Help overlay
//	Q     - Quit
//
// The view never advances the puzzle itself: the player applies moves on
// its own timers and the resulting snapshots arrive as program messages.
package viz
