package player

import (
	"fmt"
	"time"
)

// Pacing is a named delay between animated moves.
type Pacing int

const (
	PacingSlow Pacing = iota
	PacingNormal
	PacingFast
)

// Interval returns the delay between successful steps.
func (p Pacing) Interval() time.Duration {
	switch p {
	case PacingSlow:
		return 1000 * time.Millisecond
	case PacingFast:
		return 100 * time.Millisecond
	default:
		return 500 * time.Millisecond
	}
}

func (p Pacing) String() string {
	switch p {
	case PacingSlow:
		return "slow"
	case PacingFast:
		return "fast"
	default:
		return "normal"
	}
}

// ParsePacing maps a preset name to its Pacing value.
func ParsePacing(s string) (Pacing, error) {
	switch s {
	case "slow":
		return PacingSlow, nil
	case "normal", "":
		return PacingNormal, nil
	case "fast":
		return PacingFast, nil
	}
	return 0, fmt.Errorf("unknown speed: %s (available: %v)", s, PacingNames())
}

// PacingNames lists the recognized preset names.
func PacingNames() []string {
	return []string{"slow", "normal", "fast"}
}
