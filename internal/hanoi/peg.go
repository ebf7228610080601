package hanoi

// Peg is an ordered stack of disks. Index 0 is the bottom; sizes are
// strictly decreasing from bottom to top at all times.
type Peg struct {
	role  PegRole
	disks []Disk
}

// NewPeg returns an empty peg for the given role.
func NewPeg(role PegRole) *Peg {
	return &Peg{role: role, disks: make([]Disk, 0, 8)}
}

// Role returns the peg's fixed position.
func (p *Peg) Role() PegRole { return p.role }

// Push places a disk on top of the peg. The peg is unchanged and an error
// returned if the disk is not smaller than the current top.
func (p *Peg) Push(d Disk) error {
	if n := len(p.disks); n > 0 && d.Size >= p.disks[n-1].Size {
		return ErrIllegalPlacement
	}
	p.disks = append(p.disks, d)
	return nil
}

// Pop removes and returns the top disk. The bool is false on an empty peg;
// an empty pop is a caller-visible failure, never a panic.
func (p *Peg) Pop() (Disk, bool) {
	n := len(p.disks)
	if n == 0 {
		return Disk{}, false
	}
	d := p.disks[n-1]
	p.disks = p.disks[:n-1]
	return d, true
}

// Peek returns the top disk without removing it.
func (p *Peg) Peek() (Disk, bool) {
	n := len(p.disks)
	if n == 0 {
		return Disk{}, false
	}
	return p.disks[n-1], true
}

func (p *Peg) Empty() bool { return len(p.disks) == 0 }

func (p *Peg) Len() int { return len(p.disks) }

// Sizes returns the disk sizes bottom to top. The slice is a copy.
func (p *Peg) Sizes() []int {
	sizes := make([]int, len(p.disks))
	for i, d := range p.disks {
		sizes[i] = d.Size
	}
	return sizes
}

// Disks returns the disks bottom to top. The slice is a copy.
func (p *Peg) Disks() []Disk {
	disks := make([]Disk, len(p.disks))
	copy(disks, p.disks)
	return disks
}

func (p *Peg) clear() { p.disks = p.disks[:0] }
