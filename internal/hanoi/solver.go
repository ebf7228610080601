package hanoi

// Solve returns the optimal move sequence for n disks from the source peg
// to the destination peg. The classic decomposition: move n-1 disks onto
// the auxiliary peg, move disk n across, then move the n-1 disks on top of
// it. Exactly 2^n - 1 moves; disk k appears 2^(n-k) times. Panics if n < 1
// (callers validate the bound before invoking).
func Solve(n int) []Move {
	moves := make([]Move, 0, (1<<n)-1)
	return appendSolution(moves, n, RoleSource, RoleDestination, RoleAuxiliary)
}

func appendSolution(moves []Move, n int, source, destination, auxiliary PegRole) []Move {
	if n == 1 {
		return append(moves, Move{Disk: 1, From: source, To: destination})
	}
	moves = appendSolution(moves, n-1, source, auxiliary, destination)
	moves = append(moves, Move{Disk: n, From: source, To: destination})
	return appendSolution(moves, n-1, auxiliary, destination, source)
}

// Sequence is a single-consumer cursor over a solution. It is exhausted by
// pulls and cannot be rewound; a replay needs a fresh Sequence.
type Sequence struct {
	moves []Move
	next  int
}

// NewSequence builds the solution for n disks and positions the cursor at
// the first move.
func NewSequence(n int) *Sequence {
	return &Sequence{moves: Solve(n)}
}

// SequenceOf wraps an explicit move list, such as one loaded from a stored
// run. The list is not validated here; the board rejects bad moves.
func SequenceOf(moves []Move) *Sequence {
	return &Sequence{moves: moves}
}

// Next returns the next move in order. The bool is false once the sequence
// is exhausted.
func (s *Sequence) Next() (Move, bool) {
	if s.next >= len(s.moves) {
		return Move{}, false
	}
	m := s.moves[s.next]
	s.next++
	return m, true
}

// Index returns how many moves have been pulled.
func (s *Sequence) Index() int { return s.next }

// Remaining returns how many moves are left to pull.
func (s *Sequence) Remaining() int { return len(s.moves) - s.next }

// Len returns the total sequence length.
func (s *Sequence) Len() int { return len(s.moves) }
