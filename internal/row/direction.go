package row

import (
	"fmt"
	"strings"
)

// Direction biases a search within a row.
type Direction int

const (
	// Forward finds the first match at or after the starting index.
	Forward Direction = iota
	// Backward finds the last match strictly before the starting index.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config or flag value into a Direction.
// Accepts "forward", "backward", "f" and "b" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "f":
		return Forward, nil
	case "backward", "b":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
