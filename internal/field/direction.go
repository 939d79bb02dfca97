package field

import (
	"fmt"

	"github.com/danielpatrickdp/evalfield/internal/preference"
)

// #region direction
// direction maps a natural-order comparison result c (-1, 0, 1) onto the
// dominance protocol for one preference type.
type direction struct {
	atLeast func(c int) bool
	atMost  func(c int) bool
	strict  func(c int) int
}

// directions is indexed by preference.Type. None carries no ordering, so both
// dominance questions reduce to equality; its strict order stays natural so
// values of one attribute can still be sorted.
var directions = [...]direction{
	preference.None: {
		atLeast: func(c int) bool { return c == 0 },
		atMost:  func(c int) bool { return c == 0 },
		strict:  func(c int) int { return c },
	},
	preference.Gain: {
		atLeast: func(c int) bool { return c >= 0 },
		atMost:  func(c int) bool { return c <= 0 },
		strict:  func(c int) int { return c },
	},
	preference.Cost: {
		atLeast: func(c int) bool { return c <= 0 },
		atMost:  func(c int) bool { return c >= 0 },
		strict:  func(c int) int { return -c },
	},
}

func directionOf(p preference.Type) direction {
	return directions[p]
}

func checkPreference(p preference.Type) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPref, uint8(p))
	}
	return nil
}

// #endregion direction
