package hanoi

import "fmt"

// PegRole identifies one of the three fixed peg positions.
type PegRole int

const (
	RoleSource PegRole = iota
	RoleAuxiliary
	RoleDestination
)

// Roles lists the peg roles in display order (left to right).
var Roles = [3]PegRole{RoleSource, RoleAuxiliary, RoleDestination}

func (r PegRole) String() string {
	switch r {
	case RoleSource:
		return "A"
	case RoleAuxiliary:
		return "B"
	case RoleDestination:
		return "C"
	}
	return "?"
}

// ParseRole maps a peg label ("A", "B", "C") back to its role.
func ParseRole(s string) (PegRole, error) {
	switch s {
	case "A":
		return RoleSource, nil
	case "B":
		return RoleAuxiliary, nil
	case "C":
		return RoleDestination, nil
	}
	return 0, fmt.Errorf("unknown peg: %s", s)
}

// Disk is an immutable puzzle piece. Size orders disks (1 = smallest) and
// is unique within a board; Colour is a cosmetic tag for rendering and has
// no bearing on move legality.
type Disk struct {
	Size   int
	Colour string
}

// Move is a single disk relocation request. It is validated against a Board
// before being applied; constructing one performs no checks.
type Move struct {
	Disk int
	From PegRole
	To   PegRole
}

func (m Move) String() string {
	return fmt.Sprintf("move disk %d from %s to %s", m.Disk, m.From, m.To)
}
