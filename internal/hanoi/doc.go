// Package hanoi provides the core model and solver for the Tower of Hanoi
// puzzle.
//
// The package defines the fundamental types for representing and solving
// the classic three-peg puzzle:
//
//   - [PegRole]: one of the three fixed peg positions (A, B, C)
//   - [Move]: a single disk relocation request
//   - [Peg]: an ordered disk stack enforcing the size rule
//   - [Board]: the full puzzle state with move validation
//   - [Solve]: the recursive optimal move generator (2^n - 1 moves)
//
// # Example
//
//	board := hanoi.NewBoard(3)
//	for _, mv := range hanoi.Solve(3) {
//		if err := board.Apply(mv); err != nil {
//			break
//		}
//	}
//	// board.Solved() == true
//
// # Thread Safety
//
// Board and Sequence instances are NOT thread-safe. A playback controller
// owns one Board and one Sequence per run and drives them from a single
// goroutine at a time.
package hanoi
