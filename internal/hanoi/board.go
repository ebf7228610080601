package hanoi

import "fmt"

// Disk count bounds for an animated board. The solver itself works for any
// positive count; these are the limits the front ends enforce.
const (
	MinDisks = 3
	MaxDisks = 10
)

// Palette holds the default disk colours, smallest disk first. The hues are
// chosen to stay distinguishable for colour-blind viewers.
var Palette = []string{
	"#E8F4FD", // light blue
	"#4A90E2", // blue
	"#7ED321", // green
	"#F5A623", // orange
	"#D0021B", // red
	"#9013FE", // purple
	"#50E3C2", // teal
	"#B8E986", // light green
	"#F8E71C", // yellow
	"#BD10E0", // magenta
}

// DiskColour returns the palette colour for a disk size.
func DiskColour(size int) string {
	if size >= 1 && size <= len(Palette) {
		return Palette[size-1]
	}
	return "#CCCCCC"
}

// Board is the full puzzle state: three pegs and the move counters. A fresh
// board holds disks n..1 on the source peg, largest at the bottom.
type Board struct {
	pegs      [3]*Peg
	numDisks  int
	moveCount int
}

// NewBoard creates a board with n disks stacked on the source peg.
// n must be positive; front ends additionally clamp to [MinDisks, MaxDisks].
func NewBoard(n int) *Board {
	b := &Board{numDisks: n}
	for i, role := range Roles {
		b.pegs[i] = NewPeg(role)
	}
	b.fill()
	return b
}

func (b *Board) fill() {
	for size := b.numDisks; size >= 1; size-- {
		// Largest first, so every push is legal.
		_ = b.pegs[RoleSource].Push(Disk{Size: size, Colour: DiskColour(size)})
	}
}

// NumDisks returns the disk count the board was built with.
func (b *Board) NumDisks() int { return b.numDisks }

// MoveCount returns the number of successfully applied moves.
func (b *Board) MoveCount() int { return b.moveCount }

// TotalMoves returns the optimal solution length, 2^n - 1.
func (b *Board) TotalMoves() int { return (1 << b.numDisks) - 1 }

// Peg returns the peg holding the given role.
func (b *Board) Peg(role PegRole) *Peg { return b.pegs[role] }

// Apply validates and executes a move. On any rejection the board and the
// move counter are left untouched and a sentinel error identifies the cause.
func (b *Board) Apply(m Move) error {
	from := b.pegs[m.From]
	to := b.pegs[m.To]

	top, ok := from.Peek()
	if !ok {
		return fmt.Errorf("from %s: %w", m.From, ErrEmptyPeg)
	}
	if top.Size != m.Disk {
		return fmt.Errorf("expected disk %d on %s, found %d: %w", m.Disk, m.From, top.Size, ErrDiskMismatch)
	}
	if dst, ok := to.Peek(); ok && dst.Size < top.Size {
		return fmt.Errorf("disk %d onto %d on %s: %w", top.Size, dst.Size, m.To, ErrIllegalPlacement)
	}

	disk, _ := from.Pop()
	if err := to.Push(disk); err != nil {
		// Unreachable after the checks above; restore rather than corrupt.
		_ = from.Push(disk)
		return err
	}
	b.moveCount++
	return nil
}

// Solved reports whether every disk sits on the destination peg.
func (b *Board) Solved() bool {
	return b.pegs[RoleDestination].Len() == b.numDisks &&
		b.pegs[RoleSource].Empty() &&
		b.pegs[RoleAuxiliary].Empty()
}

// Reset restores the initial stacking and zeroes the move counter.
func (b *Board) Reset() {
	for _, p := range b.pegs {
		p.clear()
	}
	b.fill()
	b.moveCount = 0
}

// Snapshot returns each peg's disk sizes bottom to top, indexed by role.
func (b *Board) Snapshot() [3][]int {
	var snap [3][]int
	for i, p := range b.pegs {
		snap[i] = p.Sizes()
	}
	return snap
}
