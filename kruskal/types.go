package kruskal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBias indicates a bias name that ParseBias does not recognise.
var ErrUnknownBias = errors.New("kruskal: unknown bias")

// Bias weights the draw between the two halves of the edge list.
type Bias uint8

const (
	// None draws from either half with equal probability.
	None Bias = iota
	// Horizontal prefers the first (horizontal-leaning) half 70/30.
	Horizontal
	// Vertical prefers the second (vertical-leaning) half 70/30.
	Vertical
)

// drawRange is the exclusive upper bound of a single bias draw.
const drawRange = 10

// Threshold returns the draw value below which the horizontal half is
// preferred.
func (b Bias) Threshold() int {
	switch b {
	case Horizontal:
		return 7
	case Vertical:
		return 3
	default:
		return 5
	}
}

func (b Bias) String() string {
	switch b {
	case None:
		return "none"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Bias(%d)", uint8(b))
}

// ParseBias accepts "none", "horizontal"/"horz"/"h" and "vertical"/"vert"/"v".
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "n":
		return None, nil
	case "horizontal", "horz", "h":
		return Horizontal, nil
	case "vertical", "vert", "v":
		return Vertical, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownBias, s)
}
